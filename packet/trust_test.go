package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
)

func TestParseTrust_Passthrough(t *testing.T) {
	t.Parallel()
	data := []byte{1, 2, 3, 4}
	body, err := packet.ParseBody(packet.TagTrust, bytes.NewReader(data))
	require.NoError(t, err)
	tr, ok := body.(packet.Trust)
	require.True(t, ok)
	assert.Equal(t, data, tr.Data)
}
