package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
)

func TestParseBody_UnrecognizedTagFallsBackToUnknown(t *testing.T) {
	t.Parallel()
	data := []byte{1, 2, 3}
	body, err := packet.ParseBody(packet.TagSymEncryptedData, bytes.NewReader(data))
	require.NoError(t, err)
	u, ok := body.(packet.Unknown)
	require.True(t, ok)
	assert.Equal(t, packet.TagSymEncryptedData, u.RawTag)
	assert.Equal(t, data, u.Body)
	assert.NoError(t, u.Err)
}
