package packet

import (
	"bytes"
	"compress/bzip2"
	"compress/flate"
	"compress/zlib"
	"io"
)

// CompressionAlgorithm names an RFC 4880 §9.3 compression algorithm ID.
type CompressionAlgorithm uint8

const (
	CompressionUncompressed CompressionAlgorithm = 0
	CompressionZIP          CompressionAlgorithm = 1 // raw DEFLATE, no zlib wrapper
	CompressionZLIB         CompressionAlgorithm = 2
	CompressionBZIP2        CompressionAlgorithm = 3
)

// Compressed is a Compressed Data packet (RFC 4880 §5.6): a container
// whose body, once decompressed, is itself a stream of packets. This
// package exposes the still-compressed payload; callers that want the
// nested packets decompress it with Decompress and feed the result back
// into a parser, which is how the packet's children are reached.
type Compressed struct {
	Algo    CompressionAlgorithm
	Payload []byte
}

func (Compressed) packetTag() Tag { return TagCompressedData }

func parseCompressed(r io.Reader) (Body, error) {
	var algoByte [1]byte
	if _, err := io.ReadFull(r, algoByte[:]); err != nil {
		return nil, malformed(TagCompressedData, "algorithm octet truncated", err)
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(TagCompressedData, "payload truncated", err)
	}
	return Compressed{Algo: CompressionAlgorithm(algoByte[0]), Payload: payload}, nil
}

// Decompress returns a reader over c's decompressed payload, suitable for
// feeding back into a packet parser to recurse into the container.
func Decompress(c Compressed) (io.Reader, error) {
	switch c.Algo {
	case CompressionUncompressed:
		return bytes.NewReader(c.Payload), nil
	case CompressionZIP:
		return flate.NewReader(bytes.NewReader(c.Payload)), nil
	case CompressionZLIB:
		zr, err := zlib.NewReader(bytes.NewReader(c.Payload))
		if err != nil {
			return nil, &MalformedPacketError{Tag: TagCompressedData, Detail: "zlib header", Err: err}
		}
		return zr, nil
	case CompressionBZIP2:
		return bzip2.NewReader(bytes.NewReader(c.Payload)), nil
	default:
		return nil, &MalformedPacketError{Tag: TagCompressedData, Detail: "unsupported compression algorithm", Err: ErrInvalidArgument}
	}
}
