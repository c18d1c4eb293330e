package parser_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/armor"
	"github.com/SOF3/go-openpgp/packet"
	"github.com/SOF3/go-openpgp/parser"
	"github.com/SOF3/go-openpgp/validate"
)

func newFormatPacket(tag packet.Tag, body []byte) []byte {
	return append([]byte{0xC0 | byte(tag), byte(len(body))}, body...)
}

func literalBody(data string) []byte {
	return append([]byte{byte(packet.LiteralBinary), 0, 0, 0, 0, 0}, data...)
}

func TestFromBytes_TwoSiblingPackets(t *testing.T) {
	t.Parallel()
	var raw []byte
	raw = append(raw, newFormatPacket(packet.TagLiteral, literalBody("first"))...)
	raw = append(raw, newFormatPacket(packet.TagLiteral, literalBody("second"))...)

	step, err := parser.FromBytes(raw)
	require.NoError(t, err)

	cursor, ok := step.Cursor()
	require.True(t, ok)
	l1 := cursor.Packet().Value.(packet.Literal)
	assert.Equal(t, "first", string(l1.Data))

	step, err = cursor.Next()
	require.NoError(t, err)
	cursor, ok = step.Cursor()
	require.True(t, ok)
	l2 := cursor.Packet().Value.(packet.Literal)
	assert.Equal(t, "second", string(l2.Data))

	step, err = cursor.Next()
	require.NoError(t, err)
	summary, ok := step.Summary()
	require.True(t, ok)
	assert.Equal(t, 2, summary.Root.Len())
}

func TestCursor_RecurseIntoCompressedContainer(t *testing.T) {
	t.Parallel()
	inner := newFormatPacket(packet.TagLiteral, literalBody("nested"))
	compressedBody := append([]byte{byte(packet.CompressionUncompressed)}, inner...)
	raw := newFormatPacket(packet.TagCompressedData, compressedBody)

	step, err := parser.FromBytes(raw)
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)
	assert.True(t, cursor.Packet().Tag().IsContainer())

	step, err = cursor.Recurse()
	require.NoError(t, err)
	nestedCursor, ok := step.Cursor()
	require.True(t, ok)
	lit := nestedCursor.Packet().Value.(packet.Literal)
	assert.Equal(t, "nested", string(lit.Data))
	assert.Equal(t, []int{0, 0}, nestedCursor.Path())

	step, err = nestedCursor.Next()
	require.NoError(t, err)
	summary, ok := step.Summary()
	require.True(t, ok)
	assert.Equal(t, 1, summary.Root.Len())
	assert.Equal(t, 1, summary.Root.At(0).Children().Len())
}

func TestCursor_RecurseDeclinesPastMaxDepth(t *testing.T) {
	t.Parallel()
	inner := newFormatPacket(packet.TagLiteral, literalBody("nested"))
	compressedBody := append([]byte{byte(packet.CompressionUncompressed)}, inner...)
	raw := newFormatPacket(packet.TagCompressedData, compressedBody)

	step, err := parser.FromBytes(raw, parser.WithMaxRecursionDepth(0))
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)

	// depth cap of 0 means even the first recursion is declined: Recurse
	// behaves like Next and the container's raw body is kept buffered.
	step, err = cursor.Recurse()
	require.NoError(t, err)
	summary, ok := step.Summary()
	require.True(t, ok)
	require.Equal(t, 1, summary.Root.Len())
	top := summary.Root.At(0)
	assert.Nil(t, top.Children())
	assert.NotEmpty(t, top.Body())
}

func TestCursor_RecurseOnNonContainerErrors(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("x"))
	step, err := parser.FromBytes(raw)
	require.NoError(t, err)
	cursor, _ := step.Cursor()
	_, err = cursor.Recurse()
	assert.ErrorIs(t, err, packet.ErrInvalidArgument)
}

func TestCursor_SEIPDeclinesWithoutDecryptor(t *testing.T) {
	t.Parallel()
	body := append([]byte{1}, []byte("ciphertext")...)
	raw := newFormatPacket(packet.TagSEIP, body)

	step, err := parser.FromBytes(raw)
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)

	step, err = cursor.Recurse()
	require.NoError(t, err)
	summary, ok := step.Summary()
	require.True(t, ok)
	top := summary.Root.At(0)
	assert.Nil(t, top.Children())
	seip := top.Value.(packet.SEIPV1)
	assert.Equal(t, []byte("ciphertext"), seip.Ciphertext)
}

func TestFromReader_AutoDearmorDetectsBinary(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("binary"))
	step, err := parser.FromReader(bytes.NewReader(raw))
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)
	lit := cursor.Packet().Value.(packet.Literal)
	assert.Equal(t, "binary", string(lit.Data))
}

func TestFromReader_AutoDearmorDetectsArmor(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("armored"))
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, armor.KindMessage, nil)
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	step, err := parser.FromReader(&buf)
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)
	lit := cursor.Packet().Value.(packet.Literal)
	assert.Equal(t, "armored", string(lit.Data))
}

func TestFromReader_DearmorEnabledRequiresArmor(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("binary"))
	_, err := parser.FromReader(bytes.NewReader(raw), parser.WithDearmor(parser.DearmorEnabled))
	assert.ErrorIs(t, err, armor.ErrNoArmor)
}

func TestFromReader_MissingArmorTrailerIsNonFatalWarning(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("x"))
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, armor.KindMessage, nil)
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// Drop everything from the END line onward: the body and its
	// checksum are still intact.
	full := buf.String()
	endIdx := strings.Index(full, "-----END")
	require.True(t, endIdx >= 0)
	truncated := full[:endIdx]

	step, err := parser.FromReader(strings.NewReader(truncated), parser.WithDearmor(parser.DearmorEnabled))
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)
	lit := cursor.Packet().Value.(packet.Literal)
	assert.Equal(t, "x", string(lit.Data))

	step, err = cursor.Next()
	require.NoError(t, err)
	summary, ok := step.Summary()
	require.True(t, ok)
	assert.True(t, summary.UnexpectedEOF)
	assert.Equal(t, 1, summary.Root.Len())
}

func TestFromBytes_WithMapPopulatesFieldMap(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("hi"))

	step, err := parser.FromBytes(raw, parser.WithMap(true))
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)

	fm, ok := cursor.Packet().FieldMap()
	require.True(t, ok)
	require.Len(t, fm, 5)
	assert.Equal(t, "format", fm[0].Name)
	assert.Equal(t, "data", fm[4].Name)
	assert.Equal(t, 2, fm[4].Length)
}

func TestFromBytes_WithoutMapLeavesFieldMapAbsent(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("hi"))

	step, err := parser.FromBytes(raw)
	require.NoError(t, err)
	cursor, ok := step.Cursor()
	require.True(t, ok)

	_, ok = cursor.Packet().FieldMap()
	assert.False(t, ok)
}

func TestCursor_DrivesValidatorViaTagAndPath(t *testing.T) {
	t.Parallel()
	raw := newFormatPacket(packet.TagLiteral, literalBody("x"))

	step, err := parser.FromBytes(raw)
	require.NoError(t, err)

	var m validate.Message
	for {
		cursor, ok := step.Cursor()
		if !ok {
			break
		}
		require.NoError(t, m.Push(cursor.Tag(), cursor.Path()))
		step, err = cursor.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, validate.Valid, m.Verdict())
}
