// Package show renders raw byte sequences as printable ASCII.
//
// Every byte outside the graphic ASCII range 0x21-0x7e, including the
// space character, is escaped as \xHH with two lowercase hex digits.
// Backslash and the active quote character are escaped with a backslash.
// Rendering is total: every byte value 0-255 has a defined output.
//
// Use a Printer for full control over quoting, or the package-level
// Show/Println helpers for the common double-quoted case.
package show

import "github.com/bytefix/showbytes/json"

// Quote selects how, if at all, the printer brackets its output,
// and which character must additionally be escaped.
type Quote byte

const (
	QUOTE_NONE   Quote = 0 // no brackets, no extra escape target
	QUOTE_SINGLE Quote = 1 // wrap in '...', escape embedded '
	QUOTE_DOUBLE Quote = 2 // wrap in "...", escape embedded "
)

// String converts q to string
func (q Quote) String() string {
	switch q {
	case QUOTE_NONE:
		return "none"
	case QUOTE_SINGLE:
		return "single"
	case QUOTE_DOUBLE:
		return "double"
	default:
		return "?"
	}
}

// QuoteString converts string to Quote
func QuoteString(s string) (Quote, error) {
	switch s {
	case "none", "NONE", "":
		return QUOTE_NONE, nil
	case "single", "SINGLE":
		return QUOTE_SINGLE, nil
	case "double", "DOUBLE":
		return QUOTE_DOUBLE, nil
	default:
		return 0, ErrValue
	}
}

// char returns the bracket character, or 0 for QUOTE_NONE
func (q Quote) char() byte {
	switch q {
	case QUOTE_SINGLE:
		return '\''
	case QUOTE_DOUBLE:
		return '"'
	default:
		return 0
	}
}

// ToJSON appends JSON representation of q to dst
func (q Quote) ToJSON(dst []byte) []byte {
	dst = append(dst, '"')
	dst = append(dst, q.String()...)
	return append(dst, '"')
}

// FromJSON sets q from JSON in src
func (q *Quote) FromJSON(src []byte) error {
	v, err := QuoteString(json.SQ(src))
	if err != nil {
		return err
	}
	*q = v
	return nil
}
