package packet

import "io"

// S2KMode names an RFC 4880 §3.7.1 string-to-key specifier kind.
type S2KMode uint8

const (
	S2KSimple       S2KMode = 0
	S2KSalted       S2KMode = 1
	S2KIteratedSalted S2KMode = 3
	S2KGNUDummy     S2KMode = 101 // GnuPG extension: no secret material present
)

// S2K is a parsed string-to-key specifier: the recipe for turning a
// passphrase into a symmetric key. Deriving the actual key from a
// passphrase is a cryptographic operation and is left to an external
// collaborator; this package only frames the specifier's bytes.
type S2K struct {
	Mode     S2KMode
	HashAlgo HashAlgorithm
	Salt     [8]byte // present for Salted and IteratedSalted
	Count    uint32  // decoded iteration count; present for IteratedSalted only
}

// ReadS2K reads one string-to-key specifier from r.
func ReadS2K(r io.Reader) (S2K, error) {
	var modeByte [1]byte
	if _, err := io.ReadFull(r, modeByte[:]); err != nil {
		return S2K{}, &MalformedPacketError{Detail: "S2K mode truncated", Err: err}
	}
	s := S2K{Mode: S2KMode(modeByte[0])}

	if s.Mode == S2KGNUDummy {
		// GnuPG's extension tacks "GNU" + a 1-byte sub-type after mode 101;
		// RFC 4880 proper does not define this, but real-world keyrings
		// contain it, so we consume it rather than choking on it.
		var tail [4]byte
		if _, err := io.ReadFull(r, tail[:]); err != nil {
			return S2K{}, &MalformedPacketError{Detail: "GNU-dummy S2K truncated", Err: err}
		}
		return s, nil
	}

	var hashByte [1]byte
	if _, err := io.ReadFull(r, hashByte[:]); err != nil {
		return S2K{}, &MalformedPacketError{Detail: "S2K hash algo truncated", Err: err}
	}
	s.HashAlgo = HashAlgorithm(hashByte[0])

	switch s.Mode {
	case S2KSimple:
		return s, nil
	case S2KSalted:
		if _, err := io.ReadFull(r, s.Salt[:]); err != nil {
			return S2K{}, &MalformedPacketError{Detail: "S2K salt truncated", Err: err}
		}
		return s, nil
	case S2KIteratedSalted:
		if _, err := io.ReadFull(r, s.Salt[:]); err != nil {
			return S2K{}, &MalformedPacketError{Detail: "S2K salt truncated", Err: err}
		}
		var countByte [1]byte
		if _, err := io.ReadFull(r, countByte[:]); err != nil {
			return S2K{}, &MalformedPacketError{Detail: "S2K count truncated", Err: err}
		}
		// RFC 4880 §3.7.1.3: count = (16 + (c & 15)) << ((c >> 4) + 6)
		c := countByte[0]
		s.Count = uint32(16+(c&15)) << ((c >> 4) + 6)
		return s, nil
	default:
		return s, &MalformedPacketError{Detail: "unsupported S2K mode", Err: ErrUnsupportedPacketVersion}
	}
}
