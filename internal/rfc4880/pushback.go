package rfc4880

import "io"

// Pushback lets a caller peek at the first few bytes of a stream, decide
// something about them (in this module: whether they look like a binary
// packet header or the start of an armor block), and then read the whole
// stream back from the beginning without losing the peeked prefix.
//
// It plays the same role the teacher's message.remainder type plays when
// splitting a header out of a body it has already buffered: the bytes
// already read are replayed first, and only once they are exhausted does
// reading fall through to the live, not-yet-consumed io.Reader.
type Pushback struct {
	prefix []byte
	r      io.Reader
}

// NewPushback peeks up to n bytes from r (fewer at EOF) and returns a
// Pushback that will replay those bytes before continuing to read from r.
// r is not a Source; this wraps a plain io.Reader so it can sit in front of
// either an armor.Decode call or a raw Source.
func NewPushback(r io.Reader, n int) (*Pushback, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return &Pushback{prefix: buf[:read], r: r}, nil
}

// Peeked returns the bytes captured at construction time, without
// consuming them from the replay sequence.
func (p *Pushback) Peeked() []byte {
	return p.prefix
}

// Read implements io.Reader: first drains the captured prefix, then falls
// through to the wrapped reader.
func (p *Pushback) Read(b []byte) (n int, err error) {
	if len(p.prefix) > 0 {
		n = copy(b, p.prefix)
		p.prefix = p.prefix[n:]
	}
	if n < len(b) {
		var rn int
		rn, err = p.r.Read(b[n:])
		n += rn
	}
	return n, err
}

// Close passes through to the wrapped reader's Close, if it has one.
func (p *Pushback) Close() error {
	if c, ok := p.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
