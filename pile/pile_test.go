package pile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
	"github.com/SOF3/go-openpgp/pile"
)

func newFormatPacket(tag packet.Tag, body []byte) []byte {
	return append([]byte{0xC0 | byte(tag), byte(len(body))}, body...)
}

func literalBody(data string) []byte {
	return append([]byte{byte(packet.LiteralBinary), 0, 0, 0, 0, 0}, data...)
}

func TestFromBytes_NestedCompressedContainer(t *testing.T) {
	t.Parallel()
	inner := newFormatPacket(packet.TagLiteral, literalBody("nested"))
	compressedBody := append([]byte{byte(packet.CompressionUncompressed)}, inner...)

	var raw []byte
	raw = append(raw, newFormatPacket(packet.TagLiteral, literalBody("top"))...)
	raw = append(raw, newFormatPacket(packet.TagCompressedData, compressedBody)...)

	p, err := pile.FromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, 2, p.Root().Len())

	top, ok := p.PathRef([]int{0})
	require.True(t, ok)
	assert.Equal(t, "top", string(top.Value.(packet.Literal).Data))

	nested, ok := p.PathRef([]int{1, 0})
	require.True(t, ok)
	assert.Equal(t, "nested", string(nested.Value.(packet.Literal).Data))

	_, ok = p.PathRef([]int{5})
	assert.False(t, ok)
}

func TestPacketPile_Descendants(t *testing.T) {
	t.Parallel()
	inner := newFormatPacket(packet.TagLiteral, literalBody("nested"))
	compressedBody := append([]byte{byte(packet.CompressionUncompressed)}, inner...)

	var raw []byte
	raw = append(raw, newFormatPacket(packet.TagLiteral, literalBody("top"))...)
	raw = append(raw, newFormatPacket(packet.TagCompressedData, compressedBody)...)

	p, err := pile.FromBytes(raw)
	require.NoError(t, err)

	var tags []packet.Tag
	p.Descendants()(func(pkt *packet.Packet) bool {
		tags = append(tags, pkt.Tag())
		return true
	})
	assert.Equal(t, []packet.Tag{packet.TagLiteral, packet.TagCompressedData, packet.TagLiteral}, tags)
}
