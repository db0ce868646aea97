package show

import "io"

// Source yields an ordered, finite sequence of bytes, one at a time.
// A Source is consumed once; after the last byte, Next keeps
// returning false.
type Source interface {
	// Next returns the next byte, or false if the sequence is over.
	Next() (b byte, ok bool)
}

// Func adapts a function into a Source.
type Func func() (byte, bool)

func (f Func) Next() (byte, bool) {
	return f()
}

// FromBytes returns a Source yielding the bytes of buf in order.
// The buffer is not copied; do not modify it during the render.
func FromBytes(buf []byte) Source {
	return &sliceSource{buf}
}

type sliceSource struct {
	buf []byte
}

func (s *sliceSource) Next() (byte, bool) {
	if len(s.buf) == 0 {
		return 0, false
	}
	b := s.buf[0]
	s.buf = s.buf[1:]
	return b, true
}

// FromString returns a Source yielding the raw bytes of s in order.
func FromString(s string) Source {
	return &stringSource{s}
}

type stringSource struct {
	s string
}

func (s *stringSource) Next() (byte, bool) {
	if len(s.s) == 0 {
		return 0, false
	}
	b := s.s[0]
	s.s = s.s[1:]
	return b, true
}

// FromReader returns a Source yielding single bytes read from r.
// The first read error, including io.EOF, ends the sequence;
// the error itself is not reported.
func FromReader(r io.Reader) Source {
	if br, ok := r.(io.ByteReader); ok {
		return &byteReaderSource{br}
	}
	return &readerSource{r: r}
}

type byteReaderSource struct {
	r io.ByteReader
}

func (s *byteReaderSource) Next() (byte, bool) {
	if s.r == nil {
		return 0, false
	}
	b, err := s.r.ReadByte()
	if err != nil {
		s.r = nil
		return 0, false
	}
	return b, true
}

type readerSource struct {
	r   io.Reader
	buf [1]byte
}

func (s *readerSource) Next() (byte, bool) {
	for s.r != nil {
		n, err := s.r.Read(s.buf[:])
		if n > 0 {
			if err != nil {
				s.r = nil
			}
			return s.buf[0], true
		}
		if err != nil {
			s.r = nil
		}
	}
	return 0, false
}
