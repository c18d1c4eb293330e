package packet

import "io"

// OnePassSigV3 is the only version of the One-Pass Signature packet RFC
// 4880 defines (§5.4). It precedes the signed data so a streaming reader
// can start hashing before it has seen the trailing Signature packet.
type OnePassSigV3 struct {
	SigType    SignatureType
	HashAlgo   HashAlgorithm
	PubKeyAlgo PublicKeyAlgorithm
	KeyID      [8]byte
	Nested     bool // 0 means "nested", non-zero means "not nested"; see RFC 4880 §5.4
}

func (OnePassSigV3) packetTag() Tag { return TagOnePassSig }

func parseOnePassSig(r io.Reader) (Body, error) {
	var buf [13]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, malformed(TagOnePassSig, "body truncated", err)
	}
	if buf[0] != 3 {
		return nil, &MalformedPacketError{Tag: TagOnePassSig, Detail: "unsupported version", Err: ErrUnsupportedPacketVersion}
	}
	ops := OnePassSigV3{
		SigType:    SignatureType(buf[1]),
		HashAlgo:   HashAlgorithm(buf[2]),
		PubKeyAlgo: PublicKeyAlgorithm(buf[3]),
		Nested:     buf[12] == 0,
	}
	copy(ops.KeyID[:], buf[4:12])
	return ops, nil
}
