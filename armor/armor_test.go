package armor_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOF3/go-openpgp/armor"
	"github.com/SOF3/go-openpgp/packet"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, armor.KindMessage, armor.Headers{{Key: "Version", Value: "go-openpgp"}})
	require.NoError(t, err)

	payload := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0xFF}, 40) // spans multiple 64-octet lines
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	block, err := armor.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, armor.KindMessage, block.Kind)
	assert.Equal(t, payload, block.Body)
	v, ok := block.Headers.Get("version")
	require.True(t, ok)
	assert.Equal(t, "go-openpgp", v)
}

func TestDecode_MissingBegin(t *testing.T) {
	t.Parallel()
	_, err := armor.Decode(bytes.NewReader([]byte("just some text\nno armor here\n")))
	assert.ErrorIs(t, err, armor.ErrNoArmor)
}

func TestDecode_UnknownKind(t *testing.T) {
	t.Parallel()
	_, err := armor.Decode(bytes.NewReader([]byte("-----BEGIN PGP BOGUS BLOCK-----\n\n")))
	assert.ErrorIs(t, err, armor.ErrUnknownKind)
}

func TestDecode_BadChecksum(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, armor.KindSignature, nil)
	require.NoError(t, err)
	_, err = w.Write([]byte("signed data"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	for i, l := range lines {
		if bytes.HasPrefix(l, []byte("=")) {
			// base64 of three zero bytes: a checksum the real body
			// ("signed data") cannot possibly produce.
			lines[i] = []byte("=AAAA")
		}
	}
	corrupted := bytes.Join(lines, []byte("\n"))

	_, err = armor.Decode(bytes.NewReader(corrupted))
	require.Error(t, err)
	var badChecksum *packet.BadChecksumError
	require.True(t, errors.As(err, &badChecksum))
	assert.Equal(t, uint32(0), badChecksum.Want)
	assert.NotEqual(t, uint32(0), badChecksum.Got)
}

func TestDecode_MissingEndLine(t *testing.T) {
	t.Parallel()
	// No checksum line either: a bare truncated body, still valid base64.
	in := "-----BEGIN PGP MESSAGE-----\n\nAQIDBA==\n"
	block, err := armor.Decode(bytes.NewReader([]byte(in)))
	require.NoError(t, err)
	assert.True(t, block.Truncated)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, block.Body)
}
