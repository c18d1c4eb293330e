package packet

// Common holds the fields every packet variant shares, per spec §3.
//
// Invariant I1: a packet whose Tag is not a container kind always has
// Children == nil.
//
// Invariant I2: setting Body to a non-empty slice clears Children, and
// setting Children to a non-empty Container clears Body; for a container
// packet at most one of the two is populated at a time, while either or
// both may be nil for a non-container packet. The parser buffers every
// packet's raw body, so Body is nil there only when the body is empty or
// when recursion populated the packet's Children.
type Common struct {
	tag      Tag
	children *Container
	body     []byte
	fields   FieldMap
}

// Tag returns the packet's tag.
func (c *Common) Tag() Tag { return c.tag }

// Children returns the packet's container, or nil if this packet is not
// currently holding one (either because its tag is not a container kind,
// or because it is one but recursion never populated it).
func (c *Common) Children() *Container { return c.children }

// SetChildren installs children, clearing Body per invariant I2. Passing
// nil clears Children without setting Body.
func (c *Common) SetChildren(children *Container) {
	c.children = children
	if children != nil {
		c.body = nil
	}
}

// Body returns the packet's buffered raw body, or nil if none is held.
func (c *Common) Body() []byte { return c.body }

// SetBody installs a raw body buffer, clearing Children per invariant I2.
// Passing a nil or empty slice normalizes to absent (nil), per spec §3's
// "empty sequences MUST be normalized to absent".
func (c *Common) SetBody(body []byte) {
	if len(body) == 0 {
		c.body = nil
		return
	}
	c.body = body
	c.children = nil
}

// FieldMap returns the byte-accurate offset/length map of this packet's
// body fields, and whether one was ever computed. A map is only present
// when the parser that produced this packet was built with WithMap(true)
// and this tag has a known field layout (see FieldMapFor).
func (c *Common) FieldMap() (FieldMap, bool) {
	return c.fields, c.fields != nil
}

// SetFieldMap installs the field map produced for this packet's body.
func (c *Common) SetFieldMap(fm FieldMap) {
	c.fields = fm
}

// newCommon builds a Common for a freshly-decoded packet of the given tag.
func newCommon(tag Tag) Common {
	return Common{tag: tag}
}

// Container is an ordered sequence of child packets. Insertion order is
// wire order and is never reordered by this package. A container acquires
// children only while the parser that produced it has not yet "popped"
// the container (ascended back to the parent's depth); once popped, no
// further children may be appended, which this package enforces by simply
// never calling Push again from that point in the state machine — there
// is no runtime lock here, matching the single-threaded cooperative
// concurrency model of spec §5.
type Container struct {
	children []*Packet
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{}
}

// Len returns the number of direct children.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.children)
}

// At returns the nth direct child, or nil if n is out of range.
func (c *Container) At(n int) *Packet {
	if c == nil || n < 0 || n >= len(c.children) {
		return nil
	}
	return c.children[n]
}

// Push appends a packet as the new last child.
func (c *Container) Push(p *Packet) {
	c.children = append(c.children, p)
}

// InsertAt inserts p as the nth child, shifting later children up by one.
// Returns ErrInvalidArgument if n is out of the range [0, Len()].
func (c *Container) InsertAt(n int, p *Packet) error {
	if n < 0 || n > len(c.children) {
		return ErrInvalidArgument
	}
	c.children = append(c.children, nil)
	copy(c.children[n+1:], c.children[n:])
	c.children[n] = p
	return nil
}

// All returns a snapshot slice of the direct children, in wire order.
// Mutating the returned slice does not affect the Container.
func (c *Container) All() []*Packet {
	if c == nil {
		return nil
	}
	out := make([]*Packet, len(c.children))
	copy(out, c.children)
	return out
}
