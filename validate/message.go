package validate

import "github.com/SOF3/go-openpgp/packet"

// Message classifies a stream against the RFC 4880 §11.3 Message shape in
// a simplified form: every packet, at any depth, must carry a tag a
// Message may contain, and a Literal must appear somewhere. The order and
// nesting of packets is not checked (for example, a One-Pass Signature
// without a matching trailing Signature is accepted). Unlike Keyring and
// TPK it inspects every packet the cursor
// yields, not just depth-0 ones, since a Message's literal payload is
// typically nested inside compression or encryption containers.
type Message struct {
	sawLiteral bool
	bad        bool
}

// messageTags is the set of tags that can legally appear anywhere in a
// well-formed OpenPGP Message, per RFC 4880 §11.3.
var messageTags = map[packet.Tag]bool{
	packet.TagPKESK:          true,
	packet.TagSKESK:          true,
	packet.TagOnePassSig:     true,
	packet.TagSignature:      true,
	packet.TagCompressedData: true,
	packet.TagSEIP:           true,
	packet.TagAED:            true,
	packet.TagMDC:            true,
	packet.TagLiteral:        true,
	packet.TagMarker:         true, // legal anywhere, conforming readers ignore it
}

// Push feeds one packet's tag and path into the validator. path is
// accepted for symmetry with Keyring.Push/TPK.Push but is not otherwise
// used: a Message's grammar is depth-independent.
func (m *Message) Push(tag packet.Tag, path []int) error {
	if m.bad {
		return nil
	}
	if !messageTags[tag] {
		m.bad = true
		return nil
	}
	if tag == packet.TagLiteral {
		m.sawLiteral = true
	}
	return nil
}

// Verdict reports the grammar's classification of everything pushed so
// far.
func (m *Message) Verdict() Verdict {
	if m.bad {
		return Bad
	}
	if m.sawLiteral {
		return Valid
	}
	return InProgress
}
