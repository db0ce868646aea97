package format

import (
	"github.com/bytefix/showbytes/json"
	"github.com/bytefix/showbytes/show"
)

const hextable = "0123456789abcdef"

// Ascii renders src as unquoted printable ASCII with \xHH escapes.
func Ascii(dst, src []byte) []byte {
	return show.Printer{}.Append(dst, src)
}

// Quoted renders src in double quotes, escaping embedded double quotes.
func Quoted(dst, src []byte) []byte {
	return show.NewPrinter(show.QUOTE_DOUBLE).AppendQuoted(dst, src)
}

// Hex renders src as 0x-prefixed lowercase hex.
func Hex(dst, src []byte) []byte {
	dst = append(dst, '0', 'x')
	for _, b := range src {
		dst = append(dst, hextable[b>>4], hextable[b&0x0f])
	}
	return dst
}

// JSON renders src as a JSON string with \u00HH escapes.
func JSON(dst, src []byte) []byte {
	dst = append(dst, '"')
	dst = json.Ascii(dst, src)
	return append(dst, '"')
}
