package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
)

func TestParseSEIP(t *testing.T) {
	t.Parallel()
	raw := append([]byte{1}, []byte("ciphertext")...)
	body, err := packet.ParseBody(packet.TagSEIP, bytes.NewReader(raw))
	require.NoError(t, err)
	s, ok := body.(packet.SEIPV1)
	require.True(t, ok)
	assert.Equal(t, []byte("ciphertext"), s.Ciphertext)
}

func TestParseAED_GCM(t *testing.T) {
	t.Parallel()
	iv := bytes.Repeat([]byte{0x42}, 12)
	raw := []byte{1, byte(packet.CipherAES256), byte(packet.AEADGCM), 6}
	raw = append(raw, iv...)
	raw = append(raw, []byte("ciphertext")...)

	body, err := packet.ParseBody(packet.TagAED, bytes.NewReader(raw))
	require.NoError(t, err)
	a, ok := body.(packet.AEDV1)
	require.True(t, ok)
	assert.Equal(t, packet.AEADGCM, a.AEADAlgo)
	assert.Len(t, a.IV, 12)
	assert.Equal(t, []byte("ciphertext"), a.Ciphertext)
}
