package packet

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds named by the core specification.
// Framing errors (the ones that name a byte-layout violation at the
// header/body-length layer) are fatal to a parsing cursor. Body-decode
// errors are recovered locally: the packet in question is downgraded to
// Unknown and parsing continues at the sibling.
var (
	// ErrUnsupportedPacketVersion is returned when a packet body's leading
	// version octet names a version this package does not decode.
	ErrUnsupportedPacketVersion = errors.New("openpgp: unsupported packet version")

	// ErrMalformedPacketHeader is returned when the CTB or body-length
	// encoding violates RFC 4880 §4.2-4.3. Fatal to the cursor.
	ErrMalformedPacketHeader = errors.New("openpgp: malformed packet header")

	// ErrUnknownPacketTag names the unknown-tag error kind. ParseBody does
	// not return it: a tag with no dedicated decoder produces an Unknown
	// body with a nil Err instead.
	ErrUnknownPacketTag = errors.New("openpgp: unknown packet tag")

	// ErrMalformedMPI is returned when an MPI's declared bit count does not
	// agree with its encoded leading byte, or the body is truncated.
	ErrMalformedMPI = errors.New("openpgp: malformed MPI")

	// ErrUnsupportedEllipticCurve names the unsupported-curve error kind.
	// No decoder in this package returns it: curve OIDs are not checked.
	ErrUnsupportedEllipticCurve = errors.New("openpgp: unsupported elliptic curve")

	// ErrTruncatedInput is returned when the underlying byte source runs
	// out of bytes before a framing-level read is satisfied.
	ErrTruncatedInput = errors.New("openpgp: truncated input")

	// ErrExcessiveRecursion names the excessive-recursion error kind. No
	// function in this module returns it: parser.Cursor.Recurse at the
	// configured depth cap behaves like Next and leaves the container body
	// buffered, per invariant I5.
	ErrExcessiveRecursion = errors.New("openpgp: excessive recursion")

	// ErrInvalidArgument is returned for malformed caller input, such as a
	// negative index passed to Container.InsertAt.
	ErrInvalidArgument = errors.New("openpgp: invalid argument")

	// ErrNoAddress is returned by UserID.Address when the User ID has no
	// bracketed "<...>" address to parse. This is legal: some keys use
	// bare names or machine identifiers as their User ID.
	ErrNoAddress = errors.New("openpgp: user ID has no address")
)

// MalformedPacketError wraps a structural decode failure inside a single
// packet body together with the tag that failed and, where applicable, a
// human-readable detail string. It is what gets attached to an Unknown
// packet's Err field: the decode failed, but the containing stream's
// framing is still intact, so parsing continues at the sibling.
type MalformedPacketError struct {
	Tag    Tag
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *MalformedPacketError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("openpgp: malformed %v packet: %s: %v", e.Tag, e.Detail, e.Err)
	}
	return fmt.Sprintf("openpgp: malformed %v packet: %s", e.Tag, e.Detail)
}

// Unwrap returns the underlying cause, if any, so errors.Is/errors.As can
// see through to a sentinel like ErrMalformedMPI.
func (e *MalformedPacketError) Unwrap() error {
	return e.Err
}

// BadChecksumError is returned by the armor decoder when the trailing CRC24
// line does not match the checksum computed over the decoded body.
type BadChecksumError struct {
	Want, Got uint32
}

// Error implements the error interface.
func (e *BadChecksumError) Error() string {
	return fmt.Sprintf("openpgp: armor checksum mismatch: want %06x, got %06x", e.Want, e.Got)
}
