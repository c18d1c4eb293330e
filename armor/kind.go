// Package armor implements RFC 4880 §6 ASCII Armor: the Base64-with-CRC24
// textual envelope OpenPGP streams are commonly wrapped in for transport
// over text-only channels.
package armor

import "errors"

// Kind names the block type named on an armor's BEGIN/END lines.
type Kind string

const (
	KindMessage   Kind = "MESSAGE"
	KindPublicKey Kind = "PUBLIC KEY BLOCK"
	KindSecretKey Kind = "PRIVATE KEY BLOCK"
	KindSignature Kind = "SIGNATURE"
	KindFile      Kind = "ARMORED FILE"
)

var knownKinds = map[Kind]bool{
	KindMessage:   true,
	KindPublicKey: true,
	KindSecretKey: true,
	KindSignature: true,
	KindFile:      true,
}

// ErrNoArmor is returned when the caller demanded armor decoding but the
// input carries no recognizable BEGIN line at all.
var ErrNoArmor = errors.New("openpgp: armor requested but no armor header found")

// ErrUnknownKind is returned when a BEGIN line names a kind this package
// does not recognize.
var ErrUnknownKind = errors.New("openpgp: unrecognized armor kind")

// ErrMalformedFraming is returned for any structural violation of the
// armor grammar other than the checksum (BEGIN/END kind mismatch, no blank
// line after the headers, body or checksum lines that aren't valid
// Base64). A missing END line is not an error; see Block.Truncated.
var ErrMalformedFraming = errors.New("openpgp: malformed armor framing")
