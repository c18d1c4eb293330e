package validate

import "github.com/SOF3/go-openpgp/packet"

type tpkState int

const (
	tpkStart tpkState = iota
	tpkPrimarySigs
	tpkUserSigs
	tpkSubkeySigs
	tpkBad
)

// TPK accepts the RFC 4880 §11.1 Transferable Public (or Secret) Key
// grammar: one primary key, zero or more direct signatures, one or more
// User ID/Attribute packets each followed by zero or more signatures,
// then zero or more subkeys each followed by their binding signatures.
// Only depth-0 packets are inspected; signatures and other packets
// nested inside a compressed or encrypted wrapper are out of scope for
// this grammar (a TPK is never itself wrapped that way on the wire).
type TPK struct {
	state tpkState
}

// Push feeds one depth-0 packet's tag into the grammar. Packets at any
// other depth are ignored.
func (t *TPK) Push(tag packet.Tag, path []int) error {
	if t.state == tpkBad || !topLevel(path) {
		return nil
	}

	switch t.state {
	case tpkStart:
		switch tag {
		case packet.TagPublicKey, packet.TagSecretKey:
			t.state = tpkPrimarySigs
		default:
			t.state = tpkBad
		}
	case tpkPrimarySigs:
		switch tag {
		case packet.TagSignature:
			// direct signature over the primary key; stay
		case packet.TagUserID, packet.TagUserAttribute:
			t.state = tpkUserSigs
		default:
			t.state = tpkBad
		}
	case tpkUserSigs:
		switch tag {
		case packet.TagSignature, packet.TagUserID, packet.TagUserAttribute:
			// another identity, or a signature binding one
		case packet.TagPublicSubkey, packet.TagSecretSubkey:
			t.state = tpkSubkeySigs
		default:
			t.state = tpkBad
		}
	case tpkSubkeySigs:
		switch tag {
		case packet.TagSignature, packet.TagPublicSubkey, packet.TagSecretSubkey:
			// a binding signature, or another subkey
		default:
			t.state = tpkBad
		}
	}
	return nil
}

// Verdict reports the grammar's classification of everything pushed so
// far. A TPK becomes Valid as soon as its primary key and at least one
// User ID/Attribute have been seen; everything after that keeps it Valid
// unless a violating tag arrives.
func (t *TPK) Verdict() Verdict {
	switch t.state {
	case tpkBad:
		return Bad
	case tpkUserSigs, tpkSubkeySigs:
		return Valid
	default:
		return InProgress
	}
}
