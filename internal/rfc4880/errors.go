package rfc4880

import "errors"

// ErrTruncated is returned when a Source read demanded more bytes than the
// underlying stream had left to give.
var ErrTruncated = errors.New("rfc4880: truncated input")
