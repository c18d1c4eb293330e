package parser

import (
	"bytes"
	"io"

	"github.com/SOF3/go-openpgp/internal/rfc4880"
	"github.com/SOF3/go-openpgp/packet"
)

// Step is the result of advancing the cursor: either another packet to
// look at (Cursor) or the terminal Summary once the outermost source is
// exhausted. Exactly one of Cursor/Summary ever reports ok == true for a
// given Step.
type Step struct {
	cursor  *Cursor
	summary *Summary
}

// Cursor returns the packet this Step stopped at, or ok == false if this
// Step is the terminal one.
func (s *Step) Cursor() (*Cursor, bool) {
	if s.cursor != nil {
		return s.cursor, true
	}
	return nil, false
}

// Summary returns the terminal summary, or ok == false if this Step still
// has a packet to look at.
func (s *Step) Summary() (Summary, bool) {
	if s.summary != nil {
		return *s.summary, true
	}
	return Summary{}, false
}

// Summary is reported once the outermost byte source reaches EOF at
// depth 0. Root is the fully assembled tree of every packet the cursor
// walked, including packets whose containers were never recursed into
// (they hang off Root with Children == nil and Body holding their raw
// bytes).
type Summary struct {
	Root *packet.Container

	// UnexpectedEOF is true when the input carried a valid armor body
	// whose END line never arrived. Per the non-fatal-trailer policy,
	// Root still holds every packet that was decoded.
	UnexpectedEOF bool
}

// Cursor holds the most recently decoded packet and lets the caller
// decide whether to descend into it (Recurse) or move on to the next
// sibling (Next).
type Cursor struct {
	engine *engine
	packet *packet.Packet
	path   []int
}

// Packet returns the packet this Cursor stopped at. Its Value is always
// populated (decoding failures downgrade to packet.Unknown rather than
// leaving Value nil); its Body or Children is populated per invariant I2.
func (c *Cursor) Packet() *packet.Packet { return c.packet }

// Tag returns the tag of the packet this Cursor stopped at, equivalent
// to Packet().Tag() but named so a validator can be fed directly from a
// live Cursor without reaching into packet internals.
func (c *Cursor) Tag() packet.Tag { return c.packet.Tag() }

// Path returns the child-index path from the root to this packet.
func (c *Cursor) Path() []int { return c.path }

// Next advances past this packet without recursing into it, even if it is
// a container. A container's body is kept buffered on the packet
// (invariant I5), identical to what happens when recursion is declined
// for any other reason.
func (c *Cursor) Next() (*Step, error) {
	return c.engine.advance()
}

// Recurse descends into this packet's container, if it has one. A
// non-container packet returns ErrInvalidArgument. A container packet
// that cannot be recursed into — because the depth cap would be
// exceeded, or because it is SEIP/AED and no Decryptor was configured —
// silently behaves like Next instead, per invariant I5; this is not an
// error condition.
func (c *Cursor) Recurse() (*Step, error) {
	tag := c.packet.Tag()
	if !tag.IsContainer() {
		return nil, packet.ErrInvalidArgument
	}

	depth := len(c.engine.stack) - 1
	if depth+1 > c.engine.builder.maxRecursionDepth {
		return c.engine.advance()
	}

	nested, ok, err := c.engine.openContainer(c.packet)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Either there's no decryptor configured for an encrypted
		// container, or the container's own body failed to decode:
		// decline recursion rather than error.
		return c.engine.advance()
	}

	children := packet.NewContainer()
	c.packet.SetChildren(children)
	c.engine.stack = append(c.engine.stack, frame{
		src:      rfc4880.NewSource(nested),
		path:     append([]int(nil), c.path...),
		children: children,
	})
	return c.engine.advance()
}

// frame is one level of container nesting the engine is currently reading
// packets from: an explicit stack entry, not a recursive call, so depth
// is bounded by maxRecursionDepth rather than by the Go call stack.
type frame struct {
	src      rfc4880.Source
	path     []int
	children *packet.Container
}

type engine struct {
	builder Builder
	stack   []frame

	// armorTruncated carries forward the non-fatal "armor body decoded
	// but its END line never arrived" condition from Finalize so the
	// terminal Summary can report it via UnexpectedEOF.
	armorTruncated bool
}

func newEngine(b Builder, src rfc4880.Source) *engine {
	root := packet.NewContainer()
	return &engine{
		builder: b,
		stack:   []frame{{src: src, path: nil, children: root}},
	}
}

// advance decodes the next packet at the top of the stack, popping
// exhausted frames (ascending) as needed, and returns the Step it lands
// on.
func (e *engine) advance() (*Step, error) {
	for {
		if len(e.stack) == 0 {
			return &Step{summary: &Summary{UnexpectedEOF: e.armorTruncated}}, nil
		}

		top := &e.stack[len(e.stack)-1]

		if b, _ := top.src.Data(1); len(b) == 0 {
			// Clean end of this level: ascend rather than attempt a
			// header decode that would only report a spurious truncation.
			root := e.stack[0].children
			e.stack = e.stack[:len(e.stack)-1]
			if len(e.stack) == 0 {
				return &Step{summary: &Summary{Root: root, UnexpectedEOF: e.armorTruncated}}, nil
			}
			continue
		}

		hdr, err := packet.DecodeHeader(top.src)
		if err != nil {
			return nil, err
		}

		body := packet.NewBodyReader(top.src, hdr.Length)
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, err
		}

		idx := top.children.Len()
		path := append(append([]int(nil), top.path...), idx)

		p := packet.NewPacket(hdr.CTB.Tag)
		// ParseBody reads from a bytes.Reader over an already-fully-buffered
		// body, so it only ever fails to decode the packet's semantic
		// shape (which it reports by returning an Unknown value, not an
		// error) - never by hitting a read error on raw itself.
		value, _ := packet.ParseBody(hdr.CTB.Tag, bytes.NewReader(raw))
		p.WithValue(value)
		p.SetBody(raw)
		if e.builder.mapEnabled {
			if fm, ok := packet.FieldMapFor(hdr.CTB.Tag, raw); ok {
				p.SetFieldMap(fm)
			}
		}
		top.children.Push(p)

		cursor := &Cursor{engine: e, packet: p, path: path}
		return &Step{cursor: cursor}, nil
	}
}
