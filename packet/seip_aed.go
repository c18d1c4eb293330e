package packet

import "io"

// SEIPV1 is a Symmetrically Encrypted Integrity Protected Data packet
// (RFC 4880 §5.13). Its body is the raw ciphertext; decrypting it into a
// nested packet stream requires the session key and is left to a
// Decryptor collaborator supplied by the caller.
type SEIPV1 struct {
	Ciphertext []byte
}

func (SEIPV1) packetTag() Tag { return TagSEIP }

func parseSEIP(r io.Reader) (Body, error) {
	var verByte [1]byte
	if _, err := io.ReadFull(r, verByte[:]); err != nil {
		return nil, malformed(TagSEIP, "version truncated", err)
	}
	if verByte[0] != 1 {
		return nil, &MalformedPacketError{Tag: TagSEIP, Detail: "unsupported version", Err: ErrUnsupportedPacketVersion}
	}
	ct, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(TagSEIP, "ciphertext truncated", err)
	}
	return SEIPV1{Ciphertext: ct}, nil
}

// AEDV1 is an AEAD Encrypted Data packet (RFC 4880bis §5.16). Like SEIPV1
// its ciphertext is opaque to this package; decryption is external.
type AEDV1 struct {
	CipherAlgo     SymmetricAlgorithm
	AEADAlgo       AEADAlgorithm
	ChunkSizeOctet byte
	IV             []byte
	Ciphertext     []byte
}

func (AEDV1) packetTag() Tag { return TagAED }

func parseAED(r io.Reader) (Body, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, malformed(TagAED, "header truncated", err)
	}
	if hdr[0] != 1 {
		return nil, &MalformedPacketError{Tag: TagAED, Detail: "unsupported version", Err: ErrUnsupportedPacketVersion}
	}
	a := AEDV1{
		CipherAlgo:     SymmetricAlgorithm(hdr[1]),
		AEADAlgo:       AEADAlgorithm(hdr[2]),
		ChunkSizeOctet: hdr[3],
	}

	ivLen := aeadIVLength(a.AEADAlgo)
	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, malformed(TagAED, "IV truncated", err)
	}
	a.IV = iv

	ct, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(TagAED, "ciphertext truncated", err)
	}
	a.Ciphertext = ct
	return a, nil
}

// aeadIVLength returns the nonce length RFC 4880bis defines for algo,
// falling back to GCM's 12 bytes (the IETF AEAD convention most
// implementations actually deploy) for anything unrecognized.
func aeadIVLength(algo AEADAlgorithm) int {
	switch algo {
	case AEADEAX:
		return 16
	case AEADOCB:
		return 15
	case AEADGCM:
		return 12
	default:
		return 12
	}
}
