package packet

import (
	"io"

	"github.com/SOF3/go-openpgp/internal/rfc4880"
)

// BodyReader wraps a rfc4880.Source and exposes only the bytes belonging
// to one packet's declared body length, transparently following
// partial-body chunk descriptors so a caller never has to know whether it
// is reading a Full, Partial, or Indeterminate body. It is impossible for
// a caller of BodyReader to read past the end of its own packet's body
// into a sibling packet's bytes.
type BodyReader struct {
	src rfc4880.Source

	kind      LengthKind
	remaining uint32 // bytes left in the current chunk (Full/Partial)
	done      bool   // true once a Full chunk (or Indeterminate EOF) is exhausted
}

// NewBodyReader constructs a BodyReader bounded by length, reading further
// chunk descriptors from src as needed.
func NewBodyReader(src rfc4880.Source, length BodyLength) *BodyReader {
	br := &BodyReader{src: src, kind: length.Kind}
	switch length.Kind {
	case LengthFull:
		br.remaining = length.N
		br.done = length.N == 0
	case LengthPartial:
		br.remaining = length.N
	case LengthIndeterminate:
		// remaining is unused; done becomes true only when src hits EOF.
	}
	return br
}

// Read implements io.Reader over the bounded body.
func (br *BodyReader) Read(p []byte) (int, error) {
	if br.done {
		return 0, io.EOF
	}

	if br.kind == LengthIndeterminate {
		b, err := br.src.Data(len(p))
		if len(b) == 0 {
			br.done = true
			if err == io.EOF || err == nil {
				return 0, io.EOF
			}
			return 0, err
		}
		n := copy(p, b)
		if cerr := br.src.Consume(n); cerr != nil {
			return 0, cerr
		}
		return n, nil
	}

	for br.remaining == 0 {
		if br.kind == LengthFull {
			br.done = true
			return 0, io.EOF
		}
		// br.kind == LengthPartial: the chunk we were bounding is
		// exhausted; the next octet(s) describe the following chunk,
		// using the same grammar as a new-format body length (spec §4.2).
		next, err := decodeNewFormatLength(br.src)
		if err != nil {
			return 0, err
		}
		switch next.Kind {
		case LengthFull:
			br.kind = LengthFull
			br.remaining = next.N
			if next.N == 0 {
				br.done = true
				return 0, io.EOF
			}
		case LengthPartial:
			br.remaining = next.N
		default:
			return 0, ErrMalformedPacketHeader
		}
	}

	want := len(p)
	if uint32(want) > br.remaining {
		want = int(br.remaining)
	}
	b, err := br.src.Data(want)
	if len(b) == 0 {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	if len(b) > want {
		b = b[:want]
	}
	n := copy(p, b)
	if cerr := br.src.Consume(n); cerr != nil {
		return 0, cerr
	}
	br.remaining -= uint32(n)
	return n, nil
}

// Discard reads and throws away whatever remains of the body, returning
// the number of bytes discarded. Use DrainToBuffer instead to keep the
// bytes.
func (br *BodyReader) Discard() (int64, error) {
	return io.Copy(io.Discard, br)
}

// DrainToBuffer reads whatever remains of the body and returns it as a
// byte slice. (The parser itself buffers each body with io.ReadAll and
// calls neither this nor Discard.)
func (br *BodyReader) DrainToBuffer() ([]byte, error) {
	return io.ReadAll(br)
}
