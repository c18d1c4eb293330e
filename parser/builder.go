// Package parser implements the streaming packet cursor: a pull-based
// state machine that decodes one packet at a time from a byte source,
// optionally descending into container packets on request.
package parser

import (
	"io"

	"github.com/SOF3/go-openpgp/packet"
)

// DearmorMode selects how Finalize decides whether its input is ASCII
// armor or raw binary.
type DearmorMode int

const (
	// DearmorAuto peeks the input and decides for itself: if the leading
	// bytes decode as a structurally valid binary packet header, the
	// stream is treated as binary; otherwise it is handed to the armor
	// decoder. This is the default.
	DearmorAuto DearmorMode = iota
	// DearmorDisabled always treats the input as raw binary, even if it
	// looks like armor.
	DearmorDisabled
	// DearmorEnabled always treats the input as armor. If no BEGIN line
	// is found, Finalize returns armor.ErrNoArmor.
	DearmorEnabled
)

// Decryptor produces the plaintext packet stream nested inside a SEIP or
// AED container, given the container's tag and its still-encrypted body.
// The core has no cryptographic primitives of its own (that is a
// deliberate boundary); without a Decryptor, encrypted containers are
// never recursed into and their raw body (version octet, any header fields
// and the ciphertext) is kept verbatim as the container packet's buffered
// body.
type Decryptor func(tag packet.Tag, body io.Reader) (io.Reader, error)

// Builder configures a parser before it starts reading, following the
// teacher's functional-options idiom: the With... functions return Options,
// and FromReader/FromBytes/FromFile apply them in order to a copy of
// defaultBuilder (recursion cap 16). A zero Builder has a recursion cap of
// 0, so its Finalize never descends into containers.
type Builder struct {
	maxRecursionDepth   int
	bufferUnreadContent bool
	mapEnabled          bool
	dearmor             DearmorMode
	decryptor           Decryptor
}

// defaultBuilder mirrors the teacher's defaultParser value: the Builder
// every exported entry point starts from before applying the caller's
// options.
var defaultBuilder = Builder{
	maxRecursionDepth: 16,
}

// Option mutates a Builder. Construct one with the With... functions
// below and pass it to FromReader/FromBytes/FromFile.
type Option func(*Builder)

// WithMaxRecursionDepth overrides the default cap of 16 on container
// nesting depth.
func WithMaxRecursionDepth(n int) Option {
	return func(b *Builder) { b.maxRecursionDepth = n }
}

// WithBufferUnreadContent, when enabled, is reserved for a future reader
// surface that exposes a packet's body as a stream a caller can partially
// read; since this implementation always buffers each packet's body in
// full before returning it, the option exists for API compatibility but
// currently has no observable effect beyond what buffering already does.
func WithBufferUnreadContent(enabled bool) Option {
	return func(b *Builder) { b.bufferUnreadContent = enabled }
}

// WithMap enables byte-accurate field offset/length tracking for
// introspection tools: every decoded packet whose tag has a known field
// layout (see packet.FieldMapFor) gets a packet.FieldMap attached,
// retrievable via Packet.FieldMap(). Packets of a tag FieldMapFor does
// not recognize simply carry no map, same as when this option is off.
func WithMap(enabled bool) Option {
	return func(b *Builder) { b.mapEnabled = enabled }
}

// WithDearmor selects the dearmor mode. Default is DearmorAuto.
func WithDearmor(mode DearmorMode) Option {
	return func(b *Builder) { b.dearmor = mode }
}

// WithDecryptor installs the collaborator used to decrypt SEIP/AED
// container bodies before recursing into them. Without one, those
// containers are never recursed into.
func WithDecryptor(d Decryptor) Option {
	return func(b *Builder) { b.decryptor = d }
}

func (b Builder) clone() Builder {
	return b
}

func newBuilder(opts []Option) Builder {
	b := defaultBuilder.clone()
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
