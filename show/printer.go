package show

import "io"

const hextable = "0123456789abcdef"

// Printer renders byte sequences as printable ASCII, escaping
// everything outside the graphic range as \xHH. The zero value
// prints without quotes.
//
// A Printer holds no mutable state, so a single value may be shared
// freely between concurrent renders.
type Printer struct {
	Quote Quote // output bracketing and extra escape target
}

// NewPrinter returns a Printer with the given quoting style.
func NewPrinter(q Quote) Printer {
	return Printer{Quote: q}
}

// AppendByte appends the rendering of a single byte b to dst.
// It never writes the surrounding quote characters.
func (p Printer) AppendByte(dst []byte, b byte) []byte {
	switch {
	case p.Quote == QUOTE_SINGLE && b == '\'':
		return append(dst, '\\', '\'')
	case p.Quote == QUOTE_DOUBLE && b == '"':
		return append(dst, '\\', '"')
	case b == '\\':
		return append(dst, '\\', '\\')
	case b > 0x20 && b < 0x7f: // graphic ASCII, excludes space
		return append(dst, b)
	default:
		return append(dst, '\\', 'x', hextable[b>>4], hextable[b&0x0f])
	}
}

// Append appends the rendering of all bytes in src to dst,
// without the surrounding quote characters.
func (p Printer) Append(dst, src []byte) []byte {
	for _, b := range src {
		dst = p.AppendByte(dst, b)
	}
	return dst
}

// AppendQuoted appends the full rendering of src to dst,
// including the surrounding quote characters, if any.
func (p Printer) AppendQuoted(dst, src []byte) []byte {
	dst = p.appendQuote(dst)
	dst = p.Append(dst, src)
	return p.appendQuote(dst)
}

// appendQuote appends the bracket character, if any
func (p Printer) appendQuote(dst []byte) []byte {
	if c := p.Quote.char(); c != 0 {
		dst = append(dst, c)
	}
	return dst
}

// SprintBytes renders src as a string, including quotes.
func (p Printer) SprintBytes(src []byte) string {
	dst := make([]byte, 0, len(src)+2)
	return string(p.AppendQuoted(dst, src))
}

// Sprint renders all bytes of src as a string, including quotes.
// It cannot fail: every byte value has a defined rendering, and
// in-memory output cannot reject a write.
func (p Printer) Sprint(src Source) string {
	dst := p.appendQuote(nil)
	for {
		b, ok := src.Next()
		if !ok {
			break
		}
		dst = p.AppendByte(dst, b)
	}
	return string(p.appendQuote(dst))
}

// Fprint renders all bytes of src into w, including quotes.
// It returns the number of bytes written and the first write error,
// which aborts the rest of the pass. The writer is not flushed
// or closed.
func (p Printer) Fprint(w io.Writer, src Source) (n int, err error) {
	var frag [4]byte
	var m int

	if c := p.Quote.char(); c != 0 {
		frag[0] = c
		m, err = w.Write(frag[:1])
		n += m
		if err != nil {
			return n, err
		}
	}

	for {
		b, ok := src.Next()
		if !ok {
			break
		}
		m, err = w.Write(p.AppendByte(frag[:0], b))
		n += m
		if err != nil {
			return n, err
		}
	}

	if c := p.Quote.char(); c != 0 {
		frag[0] = c
		m, err = w.Write(frag[:1])
		n += m
	}

	return n, err
}
