package packet

import (
	"bytes"
	"io"
)

// markerBody is the fixed three-octet payload RFC 4880 §5.8 defines for
// Marker packets.
var markerBody = []byte("PGP")

// Marker is a Marker packet (RFC 4880 §5.8). Conforming readers ignore
// it; it exists only for ancient backward compatibility. This package
// still validates its fixed body so a corrupt marker is reported rather
// than silently accepted.
type Marker struct{}

func (Marker) packetTag() Tag { return TagMarker }

func parseMarker(r io.Reader) (Body, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(TagMarker, "body truncated", err)
	}
	if !bytes.Equal(data, markerBody) {
		return nil, &MalformedPacketError{Tag: TagMarker, Detail: "unexpected marker body", Err: ErrInvalidArgument}
	}
	return Marker{}, nil
}
