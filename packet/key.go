package packet

import (
	"io"
	"time"
)

// EncryptedSecretParams holds a secret key's encrypted (or plaintext)
// material exactly as framed on the wire (RFC 4880 §5.5.3). Decrypting it
// into usable key material is a cryptographic operation left to an
// external collaborator; this package only frames the bytes.
type EncryptedSecretParams struct {
	// S2KUsage is 0 for unencrypted secret material, 254/255 for the
	// modern "S2K specifier present" forms, or a legacy cipher algorithm
	// ID for the old, checksum-only form.
	S2KUsage byte
	SymAlgo  SymmetricAlgorithm // meaningful when S2KUsage != 0
	S2K      S2K                // meaningful when S2KUsage != 0
	IV       []byte             // meaningful when S2KUsage != 0
	Data     []byte             // remaining encrypted-or-plaintext secret octets, including trailing checksum/hash
}

// KeyV4 is the only key packet version this package decodes (RFC 4880
// §5.5.2), shared by all four key tags (PublicKey, PublicSubkey, SecretKey,
// SecretSubkey). SecretParams is nil for the two public tags.
type KeyV4 struct {
	Tag          Tag
	Created      time.Time
	PubKeyAlgo   PublicKeyAlgorithm
	PublicParams []MPI
	SecretParams *EncryptedSecretParams
}

func (k KeyV4) packetTag() Tag { return k.Tag }

// publicParamCount returns how many MPIs make up the public key material
// for algo, or 0 if the algorithm is not one this package knows the MPI
// layout for (in which case the remaining bytes of the packet are kept as
// a single opaque blob by the caller).
func publicParamCount(algo PublicKeyAlgorithm) int {
	switch algo {
	case PubKeyRSAEncryptSign, PubKeyRSAEncryptOnly, PubKeyRSASignOnly:
		return 2 // n, e
	case PubKeyDSA:
		return 4 // p, q, g, y
	case PubKeyElgamal:
		return 3 // p, g, y
	case PubKeyECDSA, PubKeyEdDSA:
		return 1 // point (preceded by an OID this package does not decode further)
	case PubKeyECDH:
		return 1 // point; KDF parameters follow and are kept as trailing blob
	default:
		return 0
	}
}

func parseKey(tag Tag) func(io.Reader) (Body, error) {
	return func(r io.Reader) (Body, error) {
		var hdr [6]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, malformed(tag, "fixed header truncated", err)
		}
		if hdr[0] != 4 {
			return nil, &MalformedPacketError{Tag: tag, Detail: "unsupported version", Err: ErrUnsupportedPacketVersion}
		}

		k := KeyV4{
			Tag:        tag,
			Created:    time.Unix(int64(be32(hdr[1:5])), 0).UTC(),
			PubKeyAlgo: PublicKeyAlgorithm(hdr[5]),
		}

		if k.PubKeyAlgo == PubKeyECDSA || k.PubKeyAlgo == PubKeyEdDSA {
			// Skip the one-octet-length-prefixed curve OID before the point.
			var oidLen [1]byte
			if _, err := io.ReadFull(r, oidLen[:]); err != nil {
				return nil, malformed(tag, "curve OID truncated", err)
			}
			if _, err := io.ReadFull(r, make([]byte, oidLen[0])); err != nil {
				return nil, malformed(tag, "curve OID truncated", err)
			}
		}

		n := publicParamCount(k.PubKeyAlgo)
		if n > 0 {
			mpis, err := ReadMPIs(r, n)
			if err != nil {
				return nil, malformed(tag, "public key MPIs", err)
			}
			k.PublicParams = mpis
		}

		isSecret := tag == TagSecretKey || tag == TagSecretSubkey
		if isSecret {
			sp, err := parseSecretParams(r)
			if err != nil {
				return nil, malformed(tag, "secret key material", err)
			}
			k.SecretParams = sp
		} else if n == 0 {
			// Unknown public-key algorithm on a public-tag key: keep the
			// remaining bytes so the packet still round-trips even though
			// this package cannot interpret the algorithm-specific fields.
			rest, err := io.ReadAll(r)
			if err != nil {
				return nil, malformed(tag, "trailing key material", err)
			}
			k.PublicParams = []MPI{{Bits: uint16(len(rest) * 8), Bytes: rest}}
		}

		return k, nil
	}
}

func parseSecretParams(r io.Reader) (*EncryptedSecretParams, error) {
	var usageByte [1]byte
	if _, err := io.ReadFull(r, usageByte[:]); err != nil {
		return nil, err
	}
	sp := &EncryptedSecretParams{S2KUsage: usageByte[0]}

	switch sp.S2KUsage {
	case 0:
		// no encryption
	case 254, 255:
		var algoByte [1]byte
		if _, err := io.ReadFull(r, algoByte[:]); err != nil {
			return nil, err
		}
		sp.SymAlgo = SymmetricAlgorithm(algoByte[0])
		s2k, err := ReadS2K(r)
		if err != nil {
			return nil, err
		}
		sp.S2K = s2k
		iv := make([]byte, 16)
		if _, err := io.ReadFull(r, iv); err != nil {
			return nil, err
		}
		sp.IV = iv
	default:
		// Legacy form: S2KUsage itself is a cipher algorithm ID, and a
		// simple (non-S2K-specifier) IV follows directly.
		sp.SymAlgo = SymmetricAlgorithm(sp.S2KUsage)
		iv := make([]byte, 8)
		if _, err := io.ReadFull(r, iv); err != nil {
			return nil, err
		}
		sp.IV = iv
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	sp.Data = rest
	return sp, nil
}
