package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
)

func TestParseBody_KnownTagDecodeFailureDowngradesToUnknown(t *testing.T) {
	t.Parallel()
	// MDC body must be exactly 20 bytes; give it 3 instead.
	raw := []byte{1, 2, 3}
	body, err := packet.ParseBody(packet.TagMDC, bytes.NewReader(raw))
	require.NoError(t, err)
	u, ok := body.(packet.Unknown)
	require.True(t, ok)
	assert.Equal(t, packet.TagMDC, u.RawTag)
	assert.Equal(t, raw, u.Body)
	assert.Error(t, u.Err)
}

func TestParseBody_PreservesRawBytesAcrossPartialConsumption(t *testing.T) {
	t.Parallel()
	// Literal parsing consumes several fixed fields before failing on a
	// truncated filename; Unknown.Body must still hold every input byte,
	// not just what was left unconsumed at the point of failure.
	raw := []byte{'b', 5, 'a'}
	body, err := packet.ParseBody(packet.TagLiteral, bytes.NewReader(raw))
	require.NoError(t, err)
	u := body.(packet.Unknown)
	assert.Equal(t, raw, u.Body)
}
