package packet

import "io"

// UserAttributeSubpacketType names an RFC 4880 §5.12.1 subpacket type.
type UserAttributeSubpacketType uint8

const (
	UserAttrImage UserAttributeSubpacketType = 1
)

// UserAttributeSubpacket is one TLV entry of a User Attribute packet's
// body; RFC 4880 currently defines only the Image subpacket, but the
// format is open-ended so unknown types are kept verbatim.
type UserAttributeSubpacket struct {
	Type UserAttributeSubpacketType
	Body []byte
}

// UserAttribute is a User Attribute packet (RFC 4880 §5.12): a sequence
// of subpackets, conventionally a single JPEG photo.
type UserAttribute struct {
	Subpackets []UserAttributeSubpacket
}

func (UserAttribute) packetTag() Tag { return TagUserAttribute }

func parseUserAttribute(r io.Reader) (Body, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(TagUserAttribute, "body truncated", err)
	}

	var subs []UserAttributeSubpacket
	for len(data) > 0 {
		length, n, err := decodeSubpacketLength(data)
		if err != nil {
			return nil, malformed(TagUserAttribute, "subpacket length", err)
		}
		data = data[n:]
		if length == 0 || int(length) > len(data) {
			return nil, &MalformedPacketError{Tag: TagUserAttribute, Detail: "subpacket length overruns body", Err: ErrMalformedPacketHeader}
		}
		subs = append(subs, UserAttributeSubpacket{
			Type: UserAttributeSubpacketType(data[0]),
			Body: data[1:length],
		})
		data = data[length:]
	}

	return UserAttribute{Subpackets: subs}, nil
}
