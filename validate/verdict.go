// Package validate implements the three token-stream grammars from RFC
// 4880 §11 (Message, Keyring, TPK) as small state machines a caller feeds
// one packet's tag and path at a time while streaming, mirroring how the
// teacher's walker.PartWalker callback is driven externally by a
// traversal it does not itself control.
package validate

// Verdict is the classification a validator reports after observing some
// prefix of a packet sequence.
type Verdict int

const (
	// InProgress means the sequence observed so far neither satisfies nor
	// violates the grammar; more packets could still complete it.
	InProgress Verdict = iota
	// Valid means the sequence observed so far is a complete, accepted
	// instance of the grammar. Feeding further packets can still turn a
	// Valid verdict Bad (trailing garbage), but never un-completes it.
	Valid
	// Bad means the sequence violates the grammar and cannot recover.
	Bad
)

func (v Verdict) String() string {
	switch v {
	case InProgress:
		return "InProgress"
	case Valid:
		return "Valid"
	case Bad:
		return "Bad"
	default:
		return "Verdict(?)"
	}
}

// topLevel reports whether path names a depth-0 packet (a direct child of
// the root), which is the only depth the Keyring and TPK grammars care
// about.
func topLevel(path []int) bool {
	return len(path) == 1
}
