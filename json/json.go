// Package json provides JSON utilities and wrappers around buger/jsonparser
package json

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	jsp "github.com/buger/jsonparser"
)

const hextable = "0123456789abcdef"

type Type = jsp.ValueType

const (
	STRING = jsp.String
	NUMBER = jsp.Number
	OBJECT = jsp.Object
	ARRAY  = jsp.Array
	BOOL   = jsp.Boolean
	NULL   = jsp.Null
)

var (
	ErrValue = errors.New("invalid value")

	Null = []byte("null")
)

// Hex appends src as a JSON "0x..." string to dst
func Hex(dst []byte, src []byte) []byte {
	if src == nil {
		return append(dst, Null...)
	} else if len(src) == 0 {
		return append(dst, `""`...)
	}

	dst = append(dst, `"0x`...)
	for _, v := range src {
		dst = append(dst, hextable[v>>4], hextable[v&0x0f])
	}
	return append(dst, '"')
}

// UnHex appends bytes parsed from hex string in src to dst,
// accepting an optional 0x prefix and surrounding double quotes.
func UnHex(src []byte, dst []byte) ([]byte, error) {
	src = Q(src)
	if l := len(src); l == 0 {
		return dst, nil
	} else if l%2 != 0 {
		return dst, ErrValue
	} else if src[0] == '0' && src[1] == 'x' {
		src = src[2:]
	}
	bl := len(src) / 2
	buf := make([]byte, bl)
	if _, err := hex.Decode(buf, src); err != nil {
		return dst, err
	}
	return append(dst, buf...), nil
}

// Byte appends src as a JSON number to dst
func Byte(dst []byte, src byte) []byte {
	return strconv.AppendUint(dst, uint64(src), 10)
}

// UnByte parses a single byte value from src, in any base
func UnByte(src []byte) (byte, error) {
	v, err := strconv.ParseUint(SQ(src), 0, 8)
	return uint8(v), err
}

// UnBytes appends byte values parsed from a JSON array of numbers
// in src to dst.
func UnBytes(src []byte, dst []byte) ([]byte, error) {
	err := ArrayEach(src, func(key int, val []byte, typ Type) error {
		if typ != NUMBER {
			return ErrValue
		}
		b, err := UnByte(val)
		if err != nil {
			return err
		}
		dst = append(dst, b)
		return nil
	})
	return dst, err
}

// Ascii appends ASCII characters from src to JSON string in dst
func Ascii(dst, src []byte) []byte {
	for _, c := range src {
		if c >= 0x20 && c <= 0x7e {
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			default:
				dst = append(dst, c)
			}
		} else {
			switch c {
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, "\\u00"...)
				dst = append(dst, hextable[c>>4], hextable[c&0x0f])
			}
		}
	}
	return dst
}

// S returns string from byte slice, in an unsafe way
func S(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(&buf[0], len(buf))
}

// B returns byte slice from string, in an unsafe way
func B(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

// Q removes "double quotes" in buf, if present
func Q(buf []byte) []byte {
	if l := len(buf); l > 1 && buf[0] == '"' && buf[l-1] == '"' {
		return buf[1 : l-1]
	} else {
		return buf
	}
}

// SQ returns string from byte slice, unquoting if necessary
func SQ(buf []byte) string {
	return S(Q(buf))
}

// ArrayEach calls cb for each *non-nil* value in the src array.
// If the callback returns or panics with an error, ArrayEach immediately returns it.
func ArrayEach(src []byte, cb func(key int, val []byte, typ Type) error) (reterr error) {
	var key int

	// convert panics into returned error
	defer func() {
		switch v := recover().(type) {
		case nil:
			break
		case error:
			reterr = fmt.Errorf("[%d]: %w", key, v)
		case string:
			reterr = fmt.Errorf("[%d]: %s", key, v)
		default:
			reterr = fmt.Errorf("[%d]: %v", key, v)
		}
	}()

	// iterate
	key = -1
	_, reterr = jsp.ArrayEach(src, func(val []byte, typ Type, _ int, _ error) {
		// skip nulls
		key++
		if typ == NULL {
			return // skip
		}

		// call cb, may panic
		err := cb(key, val, typ)
		if err != nil {
			panic(err) // the only way to break from ArrayEach
		}
	})

	return
}
