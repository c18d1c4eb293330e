package validate

import "github.com/SOF3/go-openpgp/packet"

// Keyring accepts a concatenation of one or more TPKs: whenever the
// current TPK has reached Valid and a new primary key packet arrives,
// that is the start of the next TPK rather than a violation.
type Keyring struct {
	active    TPK
	started   bool
	completed int
	bad       bool
}

// Push feeds one depth-0 packet's tag into the grammar.
func (k *Keyring) Push(tag packet.Tag, path []int) error {
	if k.bad || !topLevel(path) {
		return nil
	}

	if tag == packet.TagPublicKey || tag == packet.TagSecretKey {
		switch k.active.Verdict() {
		case Valid:
			k.completed++
			k.active = TPK{}
		case InProgress:
			if k.started {
				// A new primary key arrived before the previous TPK
				// reached a minimally valid shape: the stream is not a
				// clean concatenation of TPKs.
				k.bad = true
				return nil
			}
		case Bad:
			k.bad = true
			return nil
		}
	}

	k.started = true
	return k.active.Push(tag, path)
}

// Verdict reports the grammar's classification of everything pushed so
// far: Valid once at least one TPK has completed and the current one (if
// any) is not itself broken, Bad on any violation, InProgress otherwise.
func (k *Keyring) Verdict() Verdict {
	if k.bad {
		return Bad
	}
	switch k.active.Verdict() {
	case Bad:
		return Bad
	case Valid:
		return Valid
	default:
		if k.completed > 0 {
			return Valid
		}
		return InProgress
	}
}
