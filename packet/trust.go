package packet

import "io"

// Trust is a Trust packet (RFC 4880 §5.10): implementation-defined
// trust-database data that a conforming parser passes through opaquely.
type Trust struct {
	Data []byte
}

func (Trust) packetTag() Tag { return TagTrust }

func parseTrust(r io.Reader) (Body, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(TagTrust, "body truncated", err)
	}
	return Trust{Data: data}, nil
}
