// Package iter provides depth-first traversal over a parsed packet tree,
// grounded on the teacher's walker.PartWalker: an explicit work stack of
// (container, next-child-index) frames instead of a recursive function,
// so a tree of arbitrary depth never grows the Go call stack.
package iter

import "github.com/SOF3/go-openpgp/packet"

// Seq is a pull-free iterator over packets: yield is called once per
// packet in depth-first order, and a false return stops the walk early.
// This mirrors the shape the standard library's range-over-func adopted
// in Go 1.23, hand-rolled here since this module does not require that
// language version.
type Seq func(yield func(*packet.Packet) bool) bool

type frame struct {
	container *packet.Container
	index     []int // path of the container this frame belongs to
	next      int
}

// Descendants walks every packet reachable from root, in depth-first,
// parent-before-children (pre-order) order: each packet is visited, then
// all of its descendants, before its next sibling.
func Descendants(root *packet.Container) Seq {
	return func(yield func(*packet.Packet) bool) bool {
		stack := []frame{{container: root, index: nil, next: 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= top.container.Len() {
				stack = stack[:len(stack)-1]
				continue
			}

			i := top.next
			top.next++
			p := top.container.At(i)

			if !yield(p) {
				return false
			}

			if children := p.Children(); children != nil && children.Len() > 0 {
				childPath := append(append([]int(nil), top.index...), i)
				stack = append(stack, frame{container: children, index: childPath, next: 0})
			}
		}
		return true
	}
}

// Paths walks the same order as Descendants but yields each packet
// alongside its path vector (the sequence of child indices from root).
func Paths(root *packet.Container) func(yield func(path []int, p *packet.Packet) bool) bool {
	return func(yield func(path []int, p *packet.Packet) bool) bool {
		stack := []frame{{container: root, index: nil, next: 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= top.container.Len() {
				stack = stack[:len(stack)-1]
				continue
			}

			i := top.next
			top.next++
			p := top.container.At(i)
			path := append(append([]int(nil), top.index...), i)

			if !yield(path, p) {
				return false
			}

			if children := p.Children(); children != nil && children.Len() > 0 {
				stack = append(stack, frame{container: children, index: path, next: 0})
			}
		}
		return true
	}
}
