// Package openpgp is the top-level import path for a streaming OpenPGP
// (RFC 4880, plus the AEAD extensions of RFC 4880bis) packet parsing and
// object-model library.
//
// The library is split the way a streaming format parser naturally splits:
// a data-model package (packet) that knows how to decode the binary layout
// of each of the seventeen packet tags, an armor package that handles
// ASCII-armor detection and decoding, an internal low-level byte-source
// package that both of those build on, and two ways of driving the whole
// thing: a lazy, one-packet-at-a-time cursor (parser) and an eager tree
// builder (pile). The iter package walks a built tree; the validate package
// watches a stream of tags and classifies it as a well-formed OpenPGP
// Message, Keyring, or Transferable Public Key sequence.
//
// This package itself holds no code. Import the subpackage you need:
//
//	step, err := parser.FromReader(r)
//	...
//	tree, err := pile.FromBytes(data)
//
// Cryptographic verification and decryption, high-level key (TPK) object
// semantics, and message composition/serialization are not part of this
// library. Those are the job of a collaborator built on top of it.
package openpgp
