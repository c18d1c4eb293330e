package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/packet"
	"github.com/SOF3/go-openpgp/validate"
)

func TestMessage_ValidOnceLiteralSeen(t *testing.T) {
	t.Parallel()
	var m validate.Message
	assert.Equal(t, validate.InProgress, m.Verdict())

	require.NoError(t, m.Push(packet.TagCompressedData, []int{0}))
	assert.Equal(t, validate.InProgress, m.Verdict())

	require.NoError(t, m.Push(packet.TagLiteral, []int{0, 0}))
	assert.Equal(t, validate.Valid, m.Verdict())
}

func TestMessage_BadOnDisallowedTag(t *testing.T) {
	t.Parallel()
	var m validate.Message
	require.NoError(t, m.Push(packet.TagUserID, []int{0}))
	assert.Equal(t, validate.Bad, m.Verdict())
}

func TestMessage_StaysBadAfterLiteral(t *testing.T) {
	t.Parallel()
	var m validate.Message
	require.NoError(t, m.Push(packet.TagLiteral, []int{0}))
	require.NoError(t, m.Push(packet.TagUserID, []int{1}))
	assert.Equal(t, validate.Bad, m.Verdict())
}
