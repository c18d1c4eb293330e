package packet

import (
	"io"
	"time"
)

// SignatureType names the kind of data a Signature packet covers (RFC 4880
// §5.2.1). Only the values this package has occasion to inspect are named;
// others pass through as their raw byte value.
type SignatureType uint8

const (
	SigBinaryDocument  SignatureType = 0x00
	SigCanonicalText   SignatureType = 0x01
	SigStandalone      SignatureType = 0x02
	SigGenericCert     SignatureType = 0x10
	SigPersonaCert     SignatureType = 0x11
	SigCasualCert      SignatureType = 0x12
	SigPositiveCert    SignatureType = 0x13
	SigSubkeyBinding   SignatureType = 0x18
	SigPrimaryKeyBinding SignatureType = 0x19
	SigDirectKey       SignatureType = 0x1f
	SigKeyRevocation   SignatureType = 0x20
	SigSubkeyRevocation SignatureType = 0x28
	SigCertRevocation  SignatureType = 0x30
	SigTimestamp       SignatureType = 0x40
	SigThirdPartyConfirm SignatureType = 0x50
)

// PublicKeyAlgorithm names an RFC 4880 §9.1 public-key algorithm ID.
type PublicKeyAlgorithm uint8

const (
	PubKeyRSAEncryptSign PublicKeyAlgorithm = 1
	PubKeyRSAEncryptOnly PublicKeyAlgorithm = 2
	PubKeyRSASignOnly    PublicKeyAlgorithm = 3
	PubKeyElgamal        PublicKeyAlgorithm = 16
	PubKeyDSA            PublicKeyAlgorithm = 17
	PubKeyECDH           PublicKeyAlgorithm = 18
	PubKeyECDSA          PublicKeyAlgorithm = 19
	PubKeyEdDSA          PublicKeyAlgorithm = 22
)

// HashAlgorithm names an RFC 4880 §9.4 hash algorithm ID.
type HashAlgorithm uint8

const (
	HashMD5       HashAlgorithm = 1
	HashSHA1      HashAlgorithm = 2
	HashRIPEMD160 HashAlgorithm = 3
	HashSHA256    HashAlgorithm = 8
	HashSHA384    HashAlgorithm = 9
	HashSHA512    HashAlgorithm = 10
	HashSHA224    HashAlgorithm = 11
)

// SubpacketType names an RFC 4880 §5.2.3.1 signature subpacket type.
type SubpacketType uint8

const (
	SubSignatureCreationTime  SubpacketType = 2
	SubSignatureExpiration    SubpacketType = 3
	SubExportable             SubpacketType = 4
	SubTrustSignature         SubpacketType = 5
	SubRegularExpression      SubpacketType = 6
	SubRevocable              SubpacketType = 7
	SubKeyExpiration          SubpacketType = 9
	SubPreferredSymmetric     SubpacketType = 11
	SubRevocationKey          SubpacketType = 12
	SubIssuer                 SubpacketType = 16
	SubNotationData           SubpacketType = 20
	SubPreferredHash          SubpacketType = 21
	SubPreferredCompression   SubpacketType = 22
	SubKeyServerPreferences   SubpacketType = 23
	SubPreferredKeyServer     SubpacketType = 24
	SubPrimaryUserID          SubpacketType = 25
	SubPolicyURI              SubpacketType = 26
	SubKeyFlags               SubpacketType = 27
	SubSignersUserID          SubpacketType = 28
	SubRevocationReason       SubpacketType = 29
	SubFeatures               SubpacketType = 30
	SubIssuerFingerprint      SubpacketType = 33
)

// SignatureSubpacket is one TLV entry from a signature's hashed or
// unhashed subpacket area. Body is the raw, still-undecoded payload;
// Signature's typed accessors (CreationTime, Issuer, KeyFlags, ...) parse
// it on demand rather than up front, so an application that only wants
// CreationTime never pays for parsing Notation data it does not care
// about.
type SignatureSubpacket struct {
	Type     SubpacketType
	Critical bool
	Body     []byte
}

// SignatureV4 is the only signature version this package decodes (RFC 4880
// §5.2.3). An unrecognized version byte produces an Unknown packet instead
// (spec §4.4).
type SignatureV4 struct {
	SigType    SignatureType
	PubKeyAlgo PublicKeyAlgorithm
	HashAlgo   HashAlgorithm
	Hashed     []SignatureSubpacket
	Unhashed   []SignatureSubpacket
	LeftHash   [2]byte
	Signature  []MPI

	// hashSuffix is the hashed-area trailer exactly as RFC 4880 §5.2.4
	// defines it (version, sig type, pubkey algo, hash algo, hashed
	// subpacket length, hashed subpackets, then the version/0xff/length
	// trailer). It is preserved verbatim because a verifier (an external
	// collaborator per spec §1) must hash precisely these bytes, not a
	// re-serialization of the parsed fields, which need not round-trip
	// byte for byte.
	hashSuffix []byte
}

func (SignatureV4) packetTag() Tag { return TagSignature }

// HashSuffix returns the exact bytes a verifier must append to the signed
// data before hashing, per RFC 4880 §5.2.4.
func (s SignatureV4) HashSuffix() []byte { return s.hashSuffix }

// CreationTime returns the signature's creation time subpacket, if
// present in the hashed area (RFC 4880 requires it there).
func (s SignatureV4) CreationTime() (time.Time, bool) {
	for _, sp := range s.Hashed {
		if sp.Type == SubSignatureCreationTime && len(sp.Body) == 4 {
			return time.Unix(int64(be32(sp.Body)), 0).UTC(), true
		}
	}
	return time.Time{}, false
}

// Issuer returns the 8-byte issuer key ID subpacket, searching the hashed
// area first, then the unhashed area (where it conventionally lives).
func (s SignatureV4) Issuer() (keyID [8]byte, ok bool) {
	for _, area := range [][]SignatureSubpacket{s.Hashed, s.Unhashed} {
		for _, sp := range area {
			if sp.Type == SubIssuer && len(sp.Body) == 8 {
				copy(keyID[:], sp.Body)
				return keyID, true
			}
		}
	}
	return keyID, false
}

// KeyFlags returns the raw key-flags octet string of the SubKeyFlags
// subpacket, if present in the hashed area.
func (s SignatureV4) KeyFlags() ([]byte, bool) {
	for _, sp := range s.Hashed {
		if sp.Type == SubKeyFlags {
			return sp.Body, true
		}
	}
	return nil, false
}

// SignatureExpiration returns the SubSignatureExpiration subpacket as a
// duration after CreationTime, if present in the hashed area. A zero
// duration means the signature never expires.
func (s SignatureV4) SignatureExpiration() (time.Duration, bool) {
	return s.findSeconds(SubSignatureExpiration)
}

// KeyExpiration returns the SubKeyExpiration subpacket as a duration
// after the key's own creation time, if present in the hashed area. A
// zero duration means the key never expires.
func (s SignatureV4) KeyExpiration() (time.Duration, bool) {
	return s.findSeconds(SubKeyExpiration)
}

func (s SignatureV4) findSeconds(t SubpacketType) (time.Duration, bool) {
	for _, sp := range s.Hashed {
		if sp.Type == t && len(sp.Body) == 4 {
			return time.Duration(be32(sp.Body)) * time.Second, true
		}
	}
	return 0, false
}

// IssuerFingerprint returns the RFC 4880bis SubIssuerFingerprint
// subpacket: the issuing key's version octet and its fingerprint bytes
// (20 for a v4 key, 32 for a v5/v6 key), searching the hashed area first,
// then the unhashed area.
func (s SignatureV4) IssuerFingerprint() (version byte, fingerprint []byte, ok bool) {
	for _, area := range [][]SignatureSubpacket{s.Hashed, s.Unhashed} {
		for _, sp := range area {
			if sp.Type == SubIssuerFingerprint && len(sp.Body) >= 1 {
				return sp.Body[0], sp.Body[1:], true
			}
		}
	}
	return 0, nil, false
}

// PreferredSymmetric returns the ordered list of symmetric cipher
// preferences from the SubPreferredSymmetric subpacket, if present in the
// hashed area.
func (s SignatureV4) PreferredSymmetric() ([]SymmetricAlgorithm, bool) {
	sp, ok := s.findHashed(SubPreferredSymmetric)
	if !ok {
		return nil, false
	}
	out := make([]SymmetricAlgorithm, len(sp))
	for i, b := range sp {
		out[i] = SymmetricAlgorithm(b)
	}
	return out, true
}

// PreferredHash returns the ordered list of hash algorithm preferences
// from the SubPreferredHash subpacket, if present in the hashed area.
func (s SignatureV4) PreferredHash() ([]HashAlgorithm, bool) {
	sp, ok := s.findHashed(SubPreferredHash)
	if !ok {
		return nil, false
	}
	out := make([]HashAlgorithm, len(sp))
	for i, b := range sp {
		out[i] = HashAlgorithm(b)
	}
	return out, true
}

// PreferredCompression returns the ordered list of compression algorithm
// preferences from the SubPreferredCompression subpacket, if present in
// the hashed area.
func (s SignatureV4) PreferredCompression() ([]CompressionAlgorithm, bool) {
	sp, ok := s.findHashed(SubPreferredCompression)
	if !ok {
		return nil, false
	}
	out := make([]CompressionAlgorithm, len(sp))
	for i, b := range sp {
		out[i] = CompressionAlgorithm(b)
	}
	return out, true
}

// KeyServerPreferences returns the raw flag octets of the
// SubKeyServerPreferences subpacket, if present in the hashed area.
func (s SignatureV4) KeyServerPreferences() ([]byte, bool) {
	return s.findHashed(SubKeyServerPreferences)
}

// PrimaryUserID reports whether the SubPrimaryUserID subpacket marks the
// User ID this signature certifies as the key's primary one.
func (s SignatureV4) PrimaryUserID() (bool, bool) {
	sp, ok := s.findHashed(SubPrimaryUserID)
	if !ok || len(sp) == 0 {
		return false, ok
	}
	return sp[0] != 0, true
}

// NotationDataEntry is one decoded RFC 4880 §5.2.3.16 notation: a
// human-readable or binary name/value pair attached to a signature.
type NotationDataEntry struct {
	HumanReadable bool
	Name          string
	Value         []byte
}

// NotationData returns every SubNotationData subpacket in the hashed
// area, decoded into name/value pairs. Malformed notation subpackets
// (truncated length fields) are skipped rather than failing the whole
// signature, since notation data is advisory.
func (s SignatureV4) NotationData() []NotationDataEntry {
	var out []NotationDataEntry
	for _, sp := range s.Hashed {
		if sp.Type != SubNotationData {
			continue
		}
		if entry, ok := decodeNotation(sp.Body); ok {
			out = append(out, entry)
		}
	}
	return out
}

func decodeNotation(body []byte) (NotationDataEntry, bool) {
	if len(body) < 8 {
		return NotationDataEntry{}, false
	}
	flags := body[0]
	nameLen := int(body[4])<<8 | int(body[5])
	valueLen := int(body[6])<<8 | int(body[7])
	rest := body[8:]
	if nameLen+valueLen > len(rest) {
		return NotationDataEntry{}, false
	}
	return NotationDataEntry{
		HumanReadable: flags&0x80 != 0,
		Name:          string(rest[:nameLen]),
		Value:         rest[nameLen : nameLen+valueLen],
	}, true
}

func (s SignatureV4) findHashed(t SubpacketType) ([]byte, bool) {
	for _, sp := range s.Hashed {
		if sp.Type == t {
			return sp.Body, true
		}
	}
	return nil, false
}

// UnknownCritical reports whether any subpacket in either area is marked
// critical and names a subpacket type this package does not declare as a
// SubpacketType constant. Per spec §4.4's recovery policy, this does not itself fail parsing
// of the Signature packet; it only tells a verifier that it cannot safely
// ignore the subpacket it doesn't understand.
func (s SignatureV4) UnknownCritical() bool {
	for _, area := range [][]SignatureSubpacket{s.Hashed, s.Unhashed} {
		for _, sp := range area {
			if sp.Critical && !knownSubpacketType(sp.Type) {
				return true
			}
		}
	}
	return false
}

func knownSubpacketType(t SubpacketType) bool {
	switch t {
	case SubSignatureCreationTime, SubSignatureExpiration, SubExportable,
		SubTrustSignature, SubRegularExpression, SubRevocable, SubKeyExpiration,
		SubPreferredSymmetric, SubRevocationKey, SubIssuer, SubNotationData,
		SubPreferredHash, SubPreferredCompression, SubKeyServerPreferences,
		SubPreferredKeyServer, SubPrimaryUserID, SubPolicyURI, SubKeyFlags,
		SubSignersUserID, SubRevocationReason, SubFeatures, SubIssuerFingerprint:
		return true
	default:
		return false
	}
}

// parseSignature decodes a Signature packet body per RFC 4880 §5.2.3. Any
// structural problem returns a *MalformedPacketError; the caller (dispatch.go)
// turns that into an Unknown packet rather than aborting the stream.
func parseSignature(r io.Reader) (Body, error) {
	var verBuf [1]byte
	if _, err := io.ReadFull(r, verBuf[:]); err != nil {
		return nil, malformed(TagSignature, "version truncated", err)
	}
	if verBuf[0] != 4 {
		return nil, &MalformedPacketError{Tag: TagSignature, Detail: "unsupported version", Err: ErrUnsupportedPacketVersion}
	}

	var hdr [5]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, malformed(TagSignature, "fixed header truncated", err)
	}

	sig := SignatureV4{
		SigType:    SignatureType(hdr[0]),
		PubKeyAlgo: PublicKeyAlgorithm(hdr[1]),
		HashAlgo:   HashAlgorithm(hdr[2]),
	}
	hashedLen := int(hdr[3])<<8 | int(hdr[4])

	hashedBody := make([]byte, hashedLen)
	if _, err := io.ReadFull(r, hashedBody); err != nil {
		return nil, malformed(TagSignature, "hashed subpackets truncated", err)
	}
	subs, err := parseSubpackets(hashedBody)
	if err != nil {
		return nil, malformed(TagSignature, "hashed subpackets", err)
	}
	sig.Hashed = subs

	sig.hashSuffix = buildHashSuffix(verBuf[0], hdr[:3], hashedBody)

	var unhashedLenBuf [2]byte
	if _, err := io.ReadFull(r, unhashedLenBuf[:]); err != nil {
		return nil, malformed(TagSignature, "unhashed length truncated", err)
	}
	unhashedLen := int(unhashedLenBuf[0])<<8 | int(unhashedLenBuf[1])
	unhashedBody := make([]byte, unhashedLen)
	if _, err := io.ReadFull(r, unhashedBody); err != nil {
		return nil, malformed(TagSignature, "unhashed subpackets truncated", err)
	}
	subs, err = parseSubpackets(unhashedBody)
	if err != nil {
		return nil, malformed(TagSignature, "unhashed subpackets", err)
	}
	sig.Unhashed = subs

	if _, err := io.ReadFull(r, sig.LeftHash[:]); err != nil {
		return nil, malformed(TagSignature, "left-hash bytes truncated", err)
	}

	mpis, err := readSignatureMPIs(r, sig.PubKeyAlgo)
	if err != nil {
		return nil, malformed(TagSignature, "signature MPIs", err)
	}
	sig.Signature = mpis

	return sig, nil
}

func readSignatureMPIs(r io.Reader, algo PublicKeyAlgorithm) ([]MPI, error) {
	switch algo {
	case PubKeyRSAEncryptSign, PubKeyRSASignOnly, PubKeyRSAEncryptOnly:
		return ReadMPIs(r, 1)
	case PubKeyDSA, PubKeyECDSA, PubKeyEdDSA:
		return ReadMPIs(r, 2)
	default:
		// Unknown algorithm: consume whatever is left as a single opaque
		// MPI-shaped value is not safe (we don't know the arity), so read
		// to EOF and keep it as one blob-shaped pseudo-MPI.
		rest, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []MPI{{Bits: uint16(len(rest) * 8), Bytes: rest}}, nil
	}
}

func buildHashSuffix(version byte, fixed3 []byte, hashedBody []byte) []byte {
	l := 6 + len(hashedBody)
	suffix := make([]byte, l+6)
	suffix[0] = version
	copy(suffix[1:4], fixed3)
	suffix[4] = byte(len(hashedBody) >> 8)
	suffix[5] = byte(len(hashedBody))
	copy(suffix[6:l], hashedBody)
	trailer := suffix[l:]
	trailer[0] = version
	trailer[1] = 0xff
	trailer[2] = byte(l >> 24)
	trailer[3] = byte(l >> 16)
	trailer[4] = byte(l >> 8)
	trailer[5] = byte(l)
	return suffix
}

func parseSubpackets(data []byte) ([]SignatureSubpacket, error) {
	var out []SignatureSubpacket
	for len(data) > 0 {
		length, n, err := decodeSubpacketLength(data)
		if err != nil {
			return out, err
		}
		data = data[n:]
		if length == 0 || int(length) > len(data) {
			return out, &MalformedPacketError{Tag: TagSignature, Detail: "subpacket length truncated"}
		}
		body := data[:length]
		data = data[length:]

		typeByte := body[0]
		out = append(out, SignatureSubpacket{
			Type:     SubpacketType(typeByte & 0x7f),
			Critical: typeByte&0x80 != 0,
			Body:     body[1:],
		})
	}
	return out, nil
}

// decodeSubpacketLength decodes the RFC 4880 §5.2.3.1 subpacket length
// prefix, returning the subpacket length (including its own type byte)
// and the number of bytes the length prefix itself consumed.
func decodeSubpacketLength(data []byte) (length uint32, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, &MalformedPacketError{Tag: TagSignature, Detail: "subpacket length missing"}
	}
	switch {
	case data[0] < 192:
		return uint32(data[0]), 1, nil
	case data[0] < 255:
		if len(data) < 2 {
			return 0, 0, &MalformedPacketError{Tag: TagSignature, Detail: "subpacket length truncated"}
		}
		return (uint32(data[0])-192)<<8 + uint32(data[1]) + 192, 2, nil
	default:
		if len(data) < 5 {
			return 0, 0, &MalformedPacketError{Tag: TagSignature, Detail: "subpacket length truncated"}
		}
		return be32(data[1:5]), 5, nil
	}
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func malformed(tag Tag, detail string, err error) error {
	return &MalformedPacketError{Tag: tag, Detail: detail, Err: err}
}
