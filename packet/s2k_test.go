package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
)

func TestReadS2K_Simple(t *testing.T) {
	t.Parallel()
	s, err := packet.ReadS2K(bytes.NewReader([]byte{byte(packet.S2KSimple), byte(packet.HashSHA256)}))
	require.NoError(t, err)
	assert.Equal(t, packet.S2KSimple, s.Mode)
	assert.Equal(t, packet.HashSHA256, s.HashAlgo)
}

func TestReadS2K_Salted(t *testing.T) {
	t.Parallel()
	salt := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	raw := append([]byte{byte(packet.S2KSalted), byte(packet.HashSHA256)}, salt...)
	s, err := packet.ReadS2K(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, packet.S2KSalted, s.Mode)
	assert.EqualValues(t, salt, s.Salt[:])
}

func TestReadS2K_IteratedSalted(t *testing.T) {
	t.Parallel()
	salt := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	raw := append([]byte{byte(packet.S2KIteratedSalted), byte(packet.HashSHA256)}, salt...)
	raw = append(raw, 0) // count byte 0 -> count = 16<<6
	s, err := packet.ReadS2K(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, packet.S2KIteratedSalted, s.Mode)
	assert.Equal(t, uint32(16)<<6, s.Count)
}

func TestReadS2K_GNUDummy(t *testing.T) {
	t.Parallel()
	raw := []byte{101, 'G', 'N', 'U', 1}
	s, err := packet.ReadS2K(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, packet.S2KGNUDummy, s.Mode)
}

func TestReadS2K_UnsupportedMode(t *testing.T) {
	t.Parallel()
	_, err := packet.ReadS2K(bytes.NewReader([]byte{99, byte(packet.HashSHA256)}))
	assert.ErrorIs(t, err, packet.ErrUnsupportedPacketVersion)
}
