package packet

// FieldSpan names one field's byte range within a packet's raw buffered
// body (the same bytes Common.Body returns): Offset and Length are
// relative to the start of that body, never the whole packet including
// its header.
type FieldSpan struct {
	Name   string
	Offset int
	Length int
}

// FieldMap is the byte-accurate field offset/length map for one packet's
// body, populated only when the parser driving the decode is built with
// WithMap(true) (see package parser). It exists for introspection tools
// that want to point at exactly which bytes of a packet produced a given
// field, without re-implementing this package's decode grammar.
type FieldMap []FieldSpan

// FieldMapFor computes the field map for tag's body bytes, and reports
// whether tag has a known layout. Composite or variable-shaped tags this
// function has not been taught (e.g. Unknown, CompressedData) report
// ok == false rather than a guess.
func FieldMapFor(tag Tag, body []byte) (FieldMap, bool) {
	switch tag {
	case TagLiteral:
		return fieldMapLiteral(body)
	case TagUserID:
		return FieldMap{{Name: "value", Offset: 0, Length: len(body)}}, true
	case TagSignature:
		return fieldMapSignature(body)
	case TagPublicKey, TagPublicSubkey, TagSecretKey, TagSecretSubkey:
		return fieldMapKey(tag, body)
	default:
		return nil, false
	}
}

func fieldMapLiteral(body []byte) (FieldMap, bool) {
	if len(body) < 2 {
		return nil, false
	}
	nameLen := int(body[1])
	dateOff := 2 + nameLen
	dataOff := dateOff + 4
	if len(body) < dataOff {
		return nil, false
	}
	return FieldMap{
		{Name: "format", Offset: 0, Length: 1},
		{Name: "filename_length", Offset: 1, Length: 1},
		{Name: "filename", Offset: 2, Length: nameLen},
		{Name: "date", Offset: dateOff, Length: 4},
		{Name: "data", Offset: dataOff, Length: len(body) - dataOff},
	}, true
}

func fieldMapSignature(body []byte) (FieldMap, bool) {
	if len(body) < 1 || body[0] != 4 {
		return nil, false
	}
	if len(body) < 6 {
		return nil, false
	}
	fm := FieldMap{
		{Name: "version", Offset: 0, Length: 1},
		{Name: "sig_type", Offset: 1, Length: 1},
		{Name: "pubkey_algo", Offset: 2, Length: 1},
		{Name: "hash_algo", Offset: 3, Length: 1},
		{Name: "hashed_length", Offset: 4, Length: 2},
	}
	hashedLen := int(body[4])<<8 | int(body[5])
	hashedOff := 6
	unhashedLenOff := hashedOff + hashedLen
	if len(body) < unhashedLenOff+2 {
		return fm, true
	}
	fm = append(fm,
		FieldSpan{Name: "hashed_subpackets", Offset: hashedOff, Length: hashedLen},
		FieldSpan{Name: "unhashed_length", Offset: unhashedLenOff, Length: 2},
	)
	unhashedLen := int(body[unhashedLenOff])<<8 | int(body[unhashedLenOff+1])
	unhashedOff := unhashedLenOff + 2
	leftHashOff := unhashedOff + unhashedLen
	if len(body) < leftHashOff+2 {
		return fm, true
	}
	fm = append(fm,
		FieldSpan{Name: "unhashed_subpackets", Offset: unhashedOff, Length: unhashedLen},
		FieldSpan{Name: "left_hash", Offset: leftHashOff, Length: 2},
	)
	mpiOff := leftHashOff + 2
	if mpiOff < len(body) {
		fm = append(fm, FieldSpan{Name: "signature_mpis", Offset: mpiOff, Length: len(body) - mpiOff})
	}
	return fm, true
}

func fieldMapKey(tag Tag, body []byte) (FieldMap, bool) {
	if len(body) < 6 || body[0] != 4 {
		return nil, false
	}
	fm := FieldMap{
		{Name: "version", Offset: 0, Length: 1},
		{Name: "created", Offset: 1, Length: 4},
		{Name: "pubkey_algo", Offset: 5, Length: 1},
	}
	if len(body) > 6 {
		fm = append(fm, FieldSpan{Name: "key_material", Offset: 6, Length: len(body) - 6})
	}
	return fm, true
}
