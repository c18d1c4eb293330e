package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/internal/rfc4880"
	"github.com/SOF3/go-openpgp/packet"
)

func decodeHeader(t *testing.T, b []byte) packet.Header {
	t.Helper()
	src := rfc4880.NewSource(bytes.NewReader(b))
	hdr, err := packet.DecodeHeader(src)
	require.NoError(t, err)
	return hdr
}

func TestDecodeHeader_NewFormatOneOctetLength(t *testing.T) {
	t.Parallel()
	// new-format CTB for tag 1 (PKESK), one-octet length of 5.
	hdr := decodeHeader(t, []byte{0xC0 | 1, 5})
	assert.Equal(t, packet.FormatNew, hdr.CTB.Format)
	assert.Equal(t, packet.TagPKESK, hdr.CTB.Tag)
	assert.Equal(t, packet.Full(5), hdr.Length)
}

func TestDecodeHeader_NewFormatTwoOctetLength(t *testing.T) {
	t.Parallel()
	// 192 <= len < 8384 encoded as two octets: (o1-192)<<8 + o2 + 192.
	hdr := decodeHeader(t, []byte{0xC0 | 11, 192, 0})
	assert.Equal(t, packet.Full(192), hdr.Length)
}

func TestDecodeHeader_NewFormatFiveOctetLength(t *testing.T) {
	t.Parallel()
	hdr := decodeHeader(t, []byte{0xC0 | 11, 255, 0, 0, 1, 0})
	assert.Equal(t, packet.Full(256), hdr.Length)
}

func TestDecodeHeader_NewFormatPartialLength(t *testing.T) {
	t.Parallel()
	// octet in [224,254]: partial length 1<<(o1&0x1f).
	hdr := decodeHeader(t, []byte{0xC0 | 11, 224})
	assert.Equal(t, packet.Partial(1<<0), hdr.Length)
}

func TestDecodeHeader_OldFormatOneOctetLength(t *testing.T) {
	t.Parallel()
	// old-format CTB: 10 tag(4) lengthtype(2); tag 2 (Signature), length type 0.
	hdr := decodeHeader(t, []byte{0x80 | (2 << 2), 7})
	assert.Equal(t, packet.FormatOld, hdr.CTB.Format)
	assert.Equal(t, packet.TagSignature, hdr.CTB.Tag)
	assert.Equal(t, packet.Full(7), hdr.Length)
}

func TestDecodeHeader_OldFormatIndeterminate(t *testing.T) {
	t.Parallel()
	hdr := decodeHeader(t, []byte{0x80 | (2 << 2) | 3})
	assert.Equal(t, packet.Indeterminate(), hdr.Length)
}

func TestDecodeHeader_RejectsLeadingBitZero(t *testing.T) {
	t.Parallel()
	src := rfc4880.NewSource(bytes.NewReader([]byte{0x00}))
	_, err := packet.DecodeHeader(src)
	assert.ErrorIs(t, err, packet.ErrMalformedPacketHeader)
}

func TestDecodeHeader_TruncatedMidHeader(t *testing.T) {
	t.Parallel()
	// new format with a two-octet length but only the first length byte present.
	src := rfc4880.NewSource(bytes.NewReader([]byte{0xC0 | 11, 200}))
	_, err := packet.DecodeHeader(src)
	require.Error(t, err)
}
