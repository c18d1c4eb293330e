package parser

import (
	"bytes"
	"io"
	"os"
)

// FromReader builds a parser over r and returns its first Step.
func FromReader(r io.Reader, opts ...Option) (*Step, error) {
	b := newBuilder(opts)
	return b.Finalize(r)
}

// FromBytes builds a parser over data and returns its first Step.
func FromBytes(data []byte, opts ...Option) (*Step, error) {
	return FromReader(bytes.NewReader(data), opts...)
}

// FromFile opens path and builds a parser over its contents, returning
// the first Step. The opened file is never closed by this package, not
// even once the source is exhausted; callers that need deterministic
// cleanup should open the file themselves and use FromReader instead.
func FromFile(path string, opts ...Option) (*Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return FromReader(f, opts...)
}
