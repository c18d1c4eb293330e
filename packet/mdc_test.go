package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
)

func TestParseMDC(t *testing.T) {
	t.Parallel()
	var hash [20]byte
	for i := range hash {
		hash[i] = byte(i)
	}
	body, err := packet.ParseBody(packet.TagMDC, bytes.NewReader(hash[:]))
	require.NoError(t, err)
	m, ok := body.(packet.MDC)
	require.True(t, ok)
	assert.Equal(t, hash, m.Hash)
}

func TestParseMDC_WrongLength(t *testing.T) {
	t.Parallel()
	body, err := packet.ParseBody(packet.TagMDC, bytes.NewReader(make([]byte, 25)))
	require.NoError(t, err)
	u, ok := body.(packet.Unknown)
	require.True(t, ok)
	assert.Error(t, u.Err)
}
