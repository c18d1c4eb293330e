package armor

import (
	"encoding/base64"
	"fmt"
	"io"
)

const lineWidth = 64 // octets per Base64 line before encoding, per RFC 4880 §6.3

// Encode returns an io.WriteCloser that wraps every byte written to it in
// an armor block of the given kind and headers: the BEGIN line and
// headers are written immediately, writes are Base64-encoded in
// lineWidth-octet chunks, and the CRC24 trailer and END line are emitted
// on Close. This mirrors the teacher's transfer writer idiom
// (NewBase64Encoder wraps an io.Writer and defers its framing to Close).
func Encode(w io.Writer, kind Kind, headers Headers) (io.WriteCloser, error) {
	if !knownKinds[kind] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if _, err := fmt.Fprintf(w, "%s%s%s\n", beginPrefix, kind, lineSuffix); err != nil {
		return nil, err
	}
	for _, h := range headers {
		if _, err := fmt.Fprintf(w, "%s: %s\n", h.Key, h.Value); err != nil {
			return nil, err
		}
	}
	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return nil, err
	}

	return &encoder{w: w, kind: kind}, nil
}

type encoder struct {
	w    io.Writer
	kind Kind
	buf  []byte // unencoded bytes not yet flushed as a full line
	crc  uint32
	init bool
}

func (e *encoder) Write(p []byte) (int, error) {
	if !e.init {
		e.crc = crc24Init
		e.init = true
	}
	e.crc = crc24Update(e.crc, p)

	written := len(p)
	e.buf = append(e.buf, p...)
	for len(e.buf) >= lineWidth {
		if err := e.flushLine(e.buf[:lineWidth]); err != nil {
			return 0, err
		}
		e.buf = e.buf[lineWidth:]
	}
	return written, nil
}

func (e *encoder) flushLine(chunk []byte) error {
	line := base64.StdEncoding.EncodeToString(chunk)
	_, err := fmt.Fprintln(e.w, line)
	return err
}

// Close flushes any partial line, writes the CRC24 trailer and the END
// line.
func (e *encoder) Close() error {
	if len(e.buf) > 0 {
		if err := e.flushLine(e.buf); err != nil {
			return err
		}
		e.buf = nil
	}

	if !e.init {
		e.crc = crc24Init
	}
	crc := e.crc & 0xFFFFFF
	crcBytes := []byte{byte(crc >> 16), byte(crc >> 8), byte(crc)}
	if _, err := fmt.Fprintf(e.w, "=%s\n", base64.StdEncoding.EncodeToString(crcBytes)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(e.w, "%s%s%s\n", endPrefix, e.kind, lineSuffix)
	return err
}
