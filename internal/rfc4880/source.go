// Package rfc4880 holds the low-level byte-source machinery the packet,
// armor, and parser packages build on: a uniform peek/consume byte
// interface, a pushback reader for sniffing a stream's prefix, and a
// bufio.SplitFunc adapter. The body-length reader that bounds a packet body
// to its declared length is packet.BodyReader, built on this Source.
//
// None of this package's types carry OpenPGP semantics; they only know
// about bytes, counts, and EOF. packet.DecodeHeader and the per-tag body
// parsers are the layer that gives those bytes meaning.
package rfc4880

import (
	"bufio"
	"io"
)

// Source is the uniform byte interface every layer of this module reads
// through: header decoding, body-length bounding, and per-tag body
// parsing. It is deliberately small and peek-biased so that a header can be
// decoded (which requires peeking ahead without committing) before the
// reader commits to having consumed it.
type Source interface {
	// Data returns up to n bytes without advancing the read position. It
	// returns fewer than n bytes at EOF, or when n exceeds the source's
	// buffer size.
	Data(n int) ([]byte, error)

	// Consume advances the read position by exactly n bytes, which must
	// have already been returned by a prior Data/DataConsumeHard call.
	Consume(n int) error

	// DataConsumeHard peeks and consumes n bytes in one step. It returns
	// ErrTruncated if fewer than n bytes are available.
	DataConsumeHard(n int) ([]byte, error)

	// ReadBE16 reads a big-endian uint16, consuming 2 bytes.
	ReadBE16() (uint16, error)

	// ReadBE32 reads a big-endian uint32, consuming 4 bytes.
	ReadBE32() (uint32, error)

	// DataEOF drains and returns everything remaining in the source.
	DataEOF() ([]byte, error)
}

// bufSource is the concrete Source implementation used throughout this
// module: a bufio.Reader with a pushback-friendly Data/Consume split, the
// same peek-then-commit shape as the teacher's "remainder" reader, but
// generalized to arbitrary peek lengths instead of a single fixed prefix.
type bufSource struct {
	r *bufio.Reader
}

// NewSource wraps an io.Reader as a Source. The returned Source takes over
// buffering; callers should not read from r directly afterward.
func NewSource(r io.Reader) Source {
	if br, ok := r.(*bufio.Reader); ok {
		return &bufSource{r: br}
	}
	return &bufSource{r: bufio.NewReaderSize(r, 4096)}
}

func (s *bufSource) Data(n int) ([]byte, error) {
	b, err := s.r.Peek(n)
	if err == io.EOF || err == bufio.ErrBufferFull {
		// Peek returns a short read plus io.EOF when fewer than n bytes
		// remain; that's not an error at this layer, only at EOF without
		// any of the requested bytes at all do we truly have nothing.
		if len(b) > 0 {
			return b, nil
		}
		return b, io.EOF
	}
	return b, err
}

func (s *bufSource) Consume(n int) error {
	if n == 0 {
		return nil
	}
	discarded, err := s.r.Discard(n)
	if discarded != n && err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (s *bufSource) DataConsumeHard(n int) ([]byte, error) {
	b, err := s.r.Peek(n)
	if err != nil {
		if len(b) < n {
			return nil, ErrTruncated
		}
	}
	out := make([]byte, len(b))
	copy(out, b)
	if cerr := s.Consume(len(b)); cerr != nil {
		return nil, cerr
	}
	if len(out) < n {
		return out, ErrTruncated
	}
	return out, nil
}

func (s *bufSource) ReadBE16() (uint16, error) {
	b, err := s.DataConsumeHard(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (s *bufSource) ReadBE32() (uint32, error) {
	b, err := s.DataConsumeHard(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (s *bufSource) DataEOF() ([]byte, error) {
	return io.ReadAll(s.r)
}
