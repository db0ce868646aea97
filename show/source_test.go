package show

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// hides the ReadByte method of bytes.Reader
type plainReader struct {
	r *bytes.Reader
}

func (p plainReader) Read(buf []byte) (int, error) {
	return p.r.Read(buf)
}

func TestSourcesEquivalent(t *testing.T) {
	data := []byte("Hello\x00\xff it's a \\ test")
	want := ShowBytes(data)

	i := 0
	next := func() (byte, bool) {
		if i >= len(data) {
			return 0, false
		}
		b := data[i]
		i++
		return b, true
	}

	sources := []struct {
		name string
		src  Source
	}{
		{"bytes", FromBytes(data)},
		{"string", FromString(string(data))},
		{"byte reader", FromReader(bytes.NewReader(data))},
		{"plain reader", FromReader(plainReader{bytes.NewReader(data)})},
		{"func", Func(next)},
	}

	for _, tt := range sources {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, want, Show(tt.src))
		})
	}
}

func TestSourceOneShot(t *testing.T) {
	for _, src := range []Source{
		FromBytes([]byte{1}),
		FromString("\x01"),
		FromReader(bytes.NewReader([]byte{1})),
	} {
		b, ok := src.Next()
		require.True(t, ok)
		require.Equal(t, byte(1), b)

		_, ok = src.Next()
		require.False(t, ok)
		_, ok = src.Next()
		require.False(t, ok)
	}
}

func TestSourceEmpty(t *testing.T) {
	for _, src := range []Source{
		FromBytes(nil),
		FromString(""),
		FromReader(bytes.NewReader(nil)),
	} {
		_, ok := src.Next()
		require.False(t, ok)
	}
}
