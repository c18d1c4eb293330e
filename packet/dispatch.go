package packet

import (
	"bytes"
	"io"
)

// ParseBody decodes the body of a packet of the given tag from r, which
// must be exhausted exactly at the body's end (callers pass a BodyReader
// or an equivalent bounded reader, never the underlying packet stream
// directly).
//
// A tag this package has no dedicated decoder for, and a tag whose body
// fails to decode according to its own rules, both produce an Unknown
// body rather than a propagated error: a single malformed or unsupported
// packet should not abort an otherwise well-formed stream. The triggering
// error is preserved on Unknown.Err for callers that want to inspect it.
func ParseBody(tag Tag, r io.Reader) (Body, error) {
	decode, ok := bodyDecoders[tag]
	if !ok {
		return parseUnknown(tag)(r)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(tag, "body truncated", err)
	}

	body, err := decode(bytes.NewReader(raw))
	if err != nil {
		return Unknown{RawTag: tag, Body: raw, Err: err}, nil
	}
	return body, nil
}

var bodyDecoders = map[Tag]func(io.Reader) (Body, error){
	TagPKESK:         parsePKESK,
	TagSignature:     parseSignature,
	TagSKESK:         parseSKESK,
	TagOnePassSig:    parseOnePassSig,
	TagSecretKey:     parseKey(TagSecretKey),
	TagPublicKey:     parseKey(TagPublicKey),
	TagSecretSubkey:  parseKey(TagSecretSubkey),
	TagPublicSubkey:  parseKey(TagPublicSubkey),
	TagCompressedData: parseCompressed,
	TagMarker:        parseMarker,
	TagLiteral:       parseLiteral,
	TagTrust:         parseTrust,
	TagUserID:        parseUserID,
	TagUserAttribute: parseUserAttribute,
	TagSEIP:          parseSEIP,
	TagMDC:           parseMDC,
	TagAED:           parseAED,
}
