package packet

import "io"

// PKESKV3 is the only version of the Public-Key Encrypted Session Key
// packet RFC 4880 defines (§5.1).
type PKESKV3 struct {
	KeyID              [8]byte
	PubKeyAlgo         PublicKeyAlgorithm
	EncryptedSessionKey []MPI
}

func (PKESKV3) packetTag() Tag { return TagPKESK }

func parsePKESK(r io.Reader) (Body, error) {
	var hdr [9]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, malformed(TagPKESK, "header truncated", err)
	}
	if hdr[0] != 3 {
		return nil, &MalformedPacketError{Tag: TagPKESK, Detail: "unsupported version", Err: ErrUnsupportedPacketVersion}
	}
	p := PKESKV3{PubKeyAlgo: PublicKeyAlgorithm(hdr[8])}
	copy(p.KeyID[:], hdr[:8])

	var n int
	switch p.PubKeyAlgo {
	case PubKeyRSAEncryptSign, PubKeyRSAEncryptOnly:
		n = 1
	case PubKeyElgamal, PubKeyECDH:
		n = 2
	default:
		n = 0
	}
	if n > 0 {
		mpis, err := ReadMPIs(r, n)
		if err != nil {
			return nil, malformed(TagPKESK, "session key MPIs", err)
		}
		p.EncryptedSessionKey = mpis
	} else {
		rest, err := io.ReadAll(r)
		if err != nil {
			return nil, malformed(TagPKESK, "session key blob", err)
		}
		p.EncryptedSessionKey = []MPI{{Bits: uint16(len(rest) * 8), Bytes: rest}}
	}
	return p, nil
}

// SymmetricAlgorithm names an RFC 4880 §9.2 symmetric cipher ID.
type SymmetricAlgorithm uint8

const (
	CipherPlaintext SymmetricAlgorithm = 0
	CipherIDEA      SymmetricAlgorithm = 1
	CipherTripleDES SymmetricAlgorithm = 2
	CipherCAST5     SymmetricAlgorithm = 3
	CipherBlowfish  SymmetricAlgorithm = 4
	CipherAES128    SymmetricAlgorithm = 7
	CipherAES192    SymmetricAlgorithm = 8
	CipherAES256    SymmetricAlgorithm = 9
	CipherTwofish   SymmetricAlgorithm = 10
)

// AEADAlgorithm names an RFC 4880bis AEAD algorithm ID.
type AEADAlgorithm uint8

const (
	AEADEAX AEADAlgorithm = 1
	AEADOCB AEADAlgorithm = 2
	AEADGCM AEADAlgorithm = 3
)

// SKESKV4 is the classic (non-AEAD) Symmetric-Key Encrypted Session Key
// packet (RFC 4880 §5.3).
type SKESKV4 struct {
	SymAlgo             SymmetricAlgorithm
	S2K                 S2K
	EncryptedSessionKey []byte // absent (len 0) means "S2K output IS the session key"
}

func (SKESKV4) packetTag() Tag { return TagSKESK }

// SKESKV5 is the AEAD-protected Symmetric-Key Encrypted Session Key
// packet (RFC 4880bis §5.3).
type SKESKV5 struct {
	SymAlgo             SymmetricAlgorithm
	AEADAlgo            AEADAlgorithm
	S2K                 S2K
	IV                  []byte
	EncryptedSessionKey []byte // includes the trailing authentication tag
}

func (SKESKV5) packetTag() Tag { return TagSKESK }

func parseSKESK(r io.Reader) (Body, error) {
	var verBuf [1]byte
	if _, err := io.ReadFull(r, verBuf[:]); err != nil {
		return nil, malformed(TagSKESK, "version truncated", err)
	}

	switch verBuf[0] {
	case 4:
		var algoByte [1]byte
		if _, err := io.ReadFull(r, algoByte[:]); err != nil {
			return nil, malformed(TagSKESK, "sym algo truncated", err)
		}
		s2k, err := ReadS2K(r)
		if err != nil {
			return nil, malformed(TagSKESK, "S2K", err)
		}
		rest, err := io.ReadAll(r)
		if err != nil {
			return nil, malformed(TagSKESK, "encrypted session key", err)
		}
		return SKESKV4{SymAlgo: SymmetricAlgorithm(algoByte[0]), S2K: s2k, EncryptedSessionKey: rest}, nil
	case 5:
		var algos [2]byte
		if _, err := io.ReadFull(r, algos[:]); err != nil {
			return nil, malformed(TagSKESK, "algo bytes truncated", err)
		}
		s2k, err := ReadS2K(r)
		if err != nil {
			return nil, malformed(TagSKESK, "S2K", err)
		}
		// The IV is always read as 16 bytes, whatever the algorithms
		// named above; a body with fewer than 16 bytes left after the S2K
		// fails to decode.
		const ivLen = 16
		iv := make([]byte, ivLen)
		if _, err := io.ReadFull(r, iv); err != nil {
			return nil, malformed(TagSKESK, "IV truncated", err)
		}
		rest, err := io.ReadAll(r)
		if err != nil {
			return nil, malformed(TagSKESK, "encrypted session key", err)
		}
		return SKESKV5{
			SymAlgo:             SymmetricAlgorithm(algos[0]),
			AEADAlgo:            AEADAlgorithm(algos[1]),
			S2K:                 s2k,
			IV:                  iv,
			EncryptedSessionKey: rest,
		}, nil
	default:
		return nil, &MalformedPacketError{Tag: TagSKESK, Detail: "unsupported version", Err: ErrUnsupportedPacketVersion}
	}
}
