package packet

import "fmt"

// Tag names the kind of an OpenPGP packet. It is the bottom 4 (old-format)
// or 6 (new-format) bits of the leading CTB octet; see RFC 4880 §4.3.
type Tag uint8

// The packet tags defined by RFC 4880 §4.3 and the AEAD extension of
// RFC 4880bis. A decoded header keeps the raw tag value even when it is not
// named below (tag 0 is always invalid wire framing and never reaches this
// far). TagUnknown is not a real wire value.
const (
	TagPKESK           Tag = 1  // Public-Key Encrypted Session Key
	TagSignature       Tag = 2  // Signature
	TagSKESK           Tag = 3  // Symmetric-Key Encrypted Session Key
	TagOnePassSig      Tag = 4  // One-Pass Signature
	TagSecretKey       Tag = 5  // Secret Key
	TagPublicKey       Tag = 6  // Public Key
	TagSecretSubkey    Tag = 7  // Secret Subkey
	TagCompressedData  Tag = 8  // Compressed Data
	TagSymEncryptedData Tag = 9 // Symmetrically Encrypted Data (legacy, no MDC)
	TagMarker          Tag = 10 // Marker
	TagLiteral         Tag = 11 // Literal Data
	TagTrust           Tag = 12 // Trust
	TagUserID          Tag = 13 // User ID
	TagPublicSubkey    Tag = 14 // Public Subkey
	TagUserAttribute   Tag = 17 // User Attribute
	TagSEIP            Tag = 18 // Symmetrically Encrypted Integrity Protected Data
	TagMDC             Tag = 19 // Modification Detection Code
	TagAED             Tag = 20 // Authenticated Encryption with Associated Data

	// TagUnknown is the tag placed on a MalformedPacketError for a header
	// that was truncated before its tag could be reported. It is never
	// itself a wire tag value.
	TagUnknown Tag = 0xff
)

var tagNames = map[Tag]string{
	TagPKESK:            "PKESK",
	TagSignature:        "Signature",
	TagSKESK:            "SKESK",
	TagOnePassSig:       "OnePassSig",
	TagSecretKey:        "SecretKey",
	TagPublicKey:        "PublicKey",
	TagSecretSubkey:     "SecretSubkey",
	TagCompressedData:   "CompressedData",
	TagSymEncryptedData: "SymEncryptedData",
	TagMarker:           "Marker",
	TagLiteral:          "Literal",
	TagTrust:            "Trust",
	TagUserID:           "UserID",
	TagPublicSubkey:     "PublicSubkey",
	TagUserAttribute:    "UserAttribute",
	TagSEIP:             "SEIP",
	TagMDC:              "MDC",
	TagAED:              "AED",
}

// String renders the tag's mnemonic name, or "Unknown(n)" for a tag value
// this package does not recognize.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

// IsContainer reports whether packets of this tag carry children rather
// than a plain body: CompressedData, SEIP, and AED. Per invariant I1, every
// other tag's Common.children is always nil.
func (t Tag) IsContainer() bool {
	switch t {
	case TagCompressedData, TagSEIP, TagAED:
		return true
	default:
		return false
	}
}

// Known reports whether t is one of the tags named above (TagUnknown
// excluded). This includes TagSymEncryptedData, which has no dedicated body
// parser. Tags without a parser are still framed correctly (the header
// codec does not need to know what a tag means to read its body length),
// but their bodies are preserved verbatim as an Unknown packet.
func (t Tag) Known() bool {
	_, ok := tagNames[t]
	return ok
}
