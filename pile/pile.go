// Package pile implements the eager packet tree builder: it drives the
// streaming parser to completion, always choosing to recurse, and hands
// back a self-owned tree a caller can index and walk without touching the
// parser again.
package pile

import (
	"io"

	"github.com/SOF3/go-openpgp/iter"
	"github.com/SOF3/go-openpgp/packet"
	"github.com/SOF3/go-openpgp/parser"
)

// PacketPile is the fully materialized result of parsing a byte stream:
// every packet the parser walked, attached to its parent container in
// wire order.
type PacketPile struct {
	root *packet.Container
}

// FromReader drives a parser.Builder configured with opts to completion
// over r, always recursing into containers it can, and returns the
// resulting tree.
func FromReader(r io.Reader, opts ...parser.Option) (*PacketPile, error) {
	step, err := parser.FromReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return drive(step)
}

// FromBytes is FromReader over an in-memory byte slice.
func FromBytes(data []byte, opts ...parser.Option) (*PacketPile, error) {
	step, err := parser.FromBytes(data, opts...)
	if err != nil {
		return nil, err
	}
	return drive(step)
}

// FromFile is FromReader over the contents of the named file.
func FromFile(path string, opts ...parser.Option) (*PacketPile, error) {
	step, err := parser.FromFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return drive(step)
}

func drive(step *parser.Step) (*PacketPile, error) {
	for {
		if summary, ok := step.Summary(); ok {
			return &PacketPile{root: summary.Root}, nil
		}

		cursor, _ := step.Cursor()

		var next *parser.Step
		var err error
		if cursor.Packet().Tag().IsContainer() {
			next, err = cursor.Recurse()
		} else {
			next, err = cursor.Next()
		}
		if err != nil {
			return nil, err
		}
		step = next
	}
}

// PathRef indexes into the tree by a sequence of child indices, the same
// path vector the streaming cursor reports alongside each packet. It
// returns ok == false if any index in path is out of range.
func (p *PacketPile) PathRef(path []int) (*packet.Packet, bool) {
	container := p.root
	var pkt *packet.Packet
	for _, i := range path {
		pkt = container.At(i)
		if pkt == nil {
			return nil, false
		}
		container = pkt.Children()
	}
	if pkt == nil {
		return nil, false
	}
	return pkt, true
}

// Root returns the pile's root container, whose direct children are the
// top-level packets of the message.
func (p *PacketPile) Root() *packet.Container {
	return p.root
}

// Descendants returns a depth-first sequence over every packet in the
// pile.
func (p *PacketPile) Descendants() iter.Seq {
	return iter.Descendants(p.root)
}
