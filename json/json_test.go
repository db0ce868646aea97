package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	require.Equal(t, `"0xdead"`, string(Hex(nil, []byte{0xde, 0xad})))
	require.Equal(t, `null`, string(Hex(nil, nil)))
	require.Equal(t, `""`, string(Hex(nil, []byte{})))
}

func TestUnHex(t *testing.T) {
	buf, err := UnHex([]byte(`"0xdead"`), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad}, buf)

	buf, err = UnHex([]byte(`dead`), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad}, buf)

	buf, err = UnHex([]byte(``), nil)
	require.NoError(t, err)
	require.Empty(t, buf)

	_, err = UnHex([]byte(`dea`), nil)
	require.ErrorIs(t, err, ErrValue)

	_, err = UnHex([]byte(`zzzz`), nil)
	require.Error(t, err)
}

func TestByte(t *testing.T) {
	require.Equal(t, "255", string(Byte(nil, 255)))

	v, err := UnByte([]byte("255"))
	require.NoError(t, err)
	require.Equal(t, byte(255), v)

	v, err = UnByte([]byte(`"0x41"`))
	require.NoError(t, err)
	require.Equal(t, byte(0x41), v)

	_, err = UnByte([]byte("256"))
	require.Error(t, err)
}

func TestUnBytes(t *testing.T) {
	buf, err := UnBytes([]byte(`[72,101,108,108,111,0,255]`), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{72, 101, 108, 108, 111, 0, 255}, buf)

	// nulls are skipped
	buf, err = UnBytes([]byte(`[72,null,101]`), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{72, 101}, buf)

	buf, err = UnBytes([]byte(`[]`), nil)
	require.NoError(t, err)
	require.Empty(t, buf)

	_, err = UnBytes([]byte(`["a"]`), nil)
	require.ErrorIs(t, err, ErrValue)

	_, err = UnBytes([]byte(`[300]`), nil)
	require.Error(t, err)
}

func TestAscii(t *testing.T) {
	require.Equal(t, `a\"b\\c\n` + "\\u0000" + ` `, string(Ascii(nil, []byte("a\"b\\c\n\x00 "))))
	require.Equal(t, `\r\t` + "\\u007f", string(Ascii(nil, []byte("\r\t\x7f"))))
}

func TestQ(t *testing.T) {
	require.Equal(t, "x", SQ([]byte(`"x"`)))
	require.Equal(t, "x", SQ([]byte(`x`)))
	require.Equal(t, "", S(nil))
	require.Equal(t, []byte("ab"), B("ab"))
	require.Equal(t, "ab", S([]byte("ab")))
}
