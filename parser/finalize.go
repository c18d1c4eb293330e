package parser

import (
	"bytes"
	"io"

	"github.com/SOF3/go-openpgp/armor"
	"github.com/SOF3/go-openpgp/internal/rfc4880"
	"github.com/SOF3/go-openpgp/packet"
)

// sniffPrefixLen is how many bytes Finalize peeks to decide, under
// DearmorAuto, whether the input looks like a binary packet header.
// Large enough to cover any old-format or new-format header plus a
// four-octet length, which is the most any header encoding requires.
const sniffPrefixLen = 6

// Finalize builds the root byte source the cursor reads packets from,
// applying the configured dearmor mode, and returns the first Step. It
// is the Go realization of the auto-detection rule from §4.3: duplicate
// the first few bytes via a pushback layer, trial-decode them as a
// binary header, and fall back to armor only when that trial fails.
func (b Builder) Finalize(r io.Reader) (*Step, error) {
	src, armorTruncated, err := b.source(r)
	if err != nil {
		return nil, err
	}
	e := newEngine(b, src)
	e.armorTruncated = armorTruncated
	return e.advance()
}

func (b Builder) source(r io.Reader) (src rfc4880.Source, armorTruncated bool, err error) {
	switch b.dearmor {
	case DearmorDisabled:
		return rfc4880.NewSource(r), false, nil
	case DearmorEnabled:
		block, err := armor.Decode(r)
		if err != nil {
			return nil, false, err
		}
		return rfc4880.NewSource(bytes.NewReader(block.Body)), block.Truncated, nil
	default: // DearmorAuto
		return b.finalizeAuto(r)
	}
}

func (b Builder) finalizeAuto(r io.Reader) (rfc4880.Source, bool, error) {
	pb, err := rfc4880.NewPushback(r, sniffPrefixLen)
	if err != nil {
		return nil, false, err
	}

	if looksBinary(pb.Peeked()) {
		return rfc4880.NewSource(pb), false, nil
	}

	block, err := armor.Decode(pb)
	if err != nil {
		return nil, false, err
	}
	return rfc4880.NewSource(bytes.NewReader(block.Body)), block.Truncated, nil
}

// looksBinary reports whether prefix decodes as a structurally valid
// binary packet header: a recognized CTB format bit pattern, a tag this
// package has a name for, and a length encoding that does not itself
// signal a framing error.
func looksBinary(prefix []byte) bool {
	trial := rfc4880.NewSource(bytes.NewReader(prefix))
	hdr, err := packet.DecodeHeader(trial)
	if err != nil {
		return false
	}
	return hdr.CTB.Tag.Known()
}
