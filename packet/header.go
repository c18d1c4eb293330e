package packet

import (
	"github.com/SOF3/go-openpgp/internal/rfc4880"
)

// Format records whether a packet's CTB used old-format or new-format
// framing (RFC 4880 §4.2). The format flag must never be lost once
// decoded: it dictates whether partial-body chunking (new-format only) or
// an indeterminate length (old-format only) is legal for that packet.
type Format uint8

const (
	FormatOld Format = iota
	FormatNew
)

// OldLengthType is the 2-bit length-type field of an old-format CTB.
type OldLengthType uint8

const (
	OldLengthOneOctet     OldLengthType = 0
	OldLengthTwoOctets    OldLengthType = 1
	OldLengthFourOctets   OldLengthType = 2
	OldLengthIndeterminate OldLengthType = 3
)

// CTB is the decoded Cipher-Type Byte: the leading octet of every packet
// header, recording the format and (for old-format packets) the raw
// length-type bits alongside the already-decoded Tag.
type CTB struct {
	Format        Format
	Tag           Tag
	OldLengthType OldLengthType // meaningful only when Format == FormatOld
}

// Header is the decoded result of reading one packet header: the CTB plus
// the BodyLength it announced.
type Header struct {
	CTB    CTB
	Length BodyLength
}

// DecodeHeader reads one packet header from src: the CTB octet, then
// whatever length octets its format and bits call for. It returns a
// *MalformedPacketError wrapping ErrTruncatedInput if the stream ends
// mid-header, or ErrMalformedPacketHeader if the leading two bits of the
// CTB are 00 or 01 (neither "old format" nor "new format").
func DecodeHeader(src rfc4880.Source) (Header, error) {
	b, err := src.DataConsumeHard(1)
	if err != nil {
		return Header{}, truncated(err)
	}
	ctbByte := b[0]

	if ctbByte&0x80 == 0 {
		return Header{}, ErrMalformedPacketHeader
	}

	if ctbByte&0x40 == 0 {
		return decodeOldFormatHeader(src, ctbByte)
	}
	return decodeNewFormatHeader(src, ctbByte)
}

func decodeOldFormatHeader(src rfc4880.Source, ctbByte byte) (Header, error) {
	tag := Tag((ctbByte >> 2) & 0x0f)
	if tag == 0 {
		return Header{}, ErrMalformedPacketHeader
	}
	lt := OldLengthType(ctbByte & 0x03)

	var length BodyLength
	switch lt {
	case OldLengthOneOctet:
		b, err := src.DataConsumeHard(1)
		if err != nil {
			return Header{}, truncated(err)
		}
		length = Full(uint32(b[0]))
	case OldLengthTwoOctets:
		n, err := src.ReadBE16()
		if err != nil {
			return Header{}, truncated(err)
		}
		length = Full(uint32(n))
	case OldLengthFourOctets:
		n, err := src.ReadBE32()
		if err != nil {
			return Header{}, truncated(err)
		}
		length = Full(n)
	case OldLengthIndeterminate:
		length = Indeterminate()
	}

	return Header{
		CTB:    CTB{Format: FormatOld, Tag: tag, OldLengthType: lt},
		Length: length,
	}, nil
}

func decodeNewFormatHeader(src rfc4880.Source, ctbByte byte) (Header, error) {
	tag := Tag(ctbByte & 0x3f)
	if tag == 0 {
		return Header{}, ErrMalformedPacketHeader
	}

	length, err := decodeNewFormatLength(src)
	if err != nil {
		return Header{}, err
	}

	return Header{
		CTB:    CTB{Format: FormatNew, Tag: tag},
		Length: length,
	}, nil
}

// decodeNewFormatLength reads one new-format body-length encoding (RFC
// 4880 §4.2.2) from src. This same octet-by-octet grammar is reused
// in-line by the body-length reader to decode each successive partial-body
// chunk descriptor (spec §4.2), so it is exported within the package.
func decodeNewFormatLength(src rfc4880.Source) (BodyLength, error) {
	b, err := src.DataConsumeHard(1)
	if err != nil {
		return BodyLength{}, truncated(err)
	}
	o1 := b[0]

	switch {
	case o1 <= 191:
		return Full(uint32(o1)), nil
	case o1 <= 223:
		b2, err := src.DataConsumeHard(1)
		if err != nil {
			return BodyLength{}, truncated(err)
		}
		return Full((uint32(o1)-192)<<8 + uint32(b2[0]) + 192), nil
	case o1 <= 254:
		return Partial(1 << (o1 & 0x1f)), nil
	default: // o1 == 255
		n, err := src.ReadBE32()
		if err != nil {
			return BodyLength{}, truncated(err)
		}
		return Full(n), nil
	}
}

func truncated(cause error) error {
	return &MalformedPacketError{Tag: TagUnknown, Detail: "header truncated", Err: ErrTruncatedInput}
}
