package packet

// Body is implemented by every decoded packet body value (SignatureV4,
// PKESKV3, Literal, Unknown, ...). It carries no behavior of its own; it
// exists so Packet.Value can hold "one of these structs" while still
// letting new packet kinds or new packet versions be added later without
// breaking existing exhaustive type switches in the way an unsealed Go
// interface naturally allows (callers that type-switch should always keep
// a default case, the same discipline spec §9 asks for).
type Body interface {
	// packetTag reports the tag this body was decoded for. It exists so
	// generic code (Unknown synthesis, tests) can recover the tag from a
	// Body value alone.
	packetTag() Tag
}

// Packet is the tagged-variant packet type: Common fields shared by every
// packet, plus a Value holding the tag-specific decoded body. Value is nil
// for a packet whose body has not been decoded yet (a shell produced by
// the streaming parser's HeaderParsed state, before BodyDelivered).
type Packet struct {
	Common
	Value Body
}

// NewPacket constructs a packet shell for tag with no body decoded yet.
func NewPacket(tag Tag) *Packet {
	return &Packet{Common: newCommon(tag)}
}

// WithValue returns p after installing its decoded Value. It is a small
// convenience used by ParseBody callers and tests; p is mutated in place
// and also returned.
func (p *Packet) WithValue(v Body) *Packet {
	p.Value = v
	return p
}
