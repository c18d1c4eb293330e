package parser

import (
	"bytes"
	"io"

	"github.com/SOF3/go-openpgp/packet"
)

// openContainer produces the plaintext packet stream nested inside p, if
// p's decoded Value supports it and (for encrypted containers) a
// Decryptor is configured. ok == false means "decline recursion", never
// an error: an unparsed (Unknown) container body or a missing Decryptor
// are both ordinary, expected reasons to stay at this depth.
func (e *engine) openContainer(p *packet.Packet) (r io.Reader, ok bool, err error) {
	switch v := p.Value.(type) {
	case packet.Compressed:
		reader, err := packet.Decompress(v)
		if err != nil {
			return nil, false, nil
		}
		return reader, true, nil
	case packet.SEIPV1:
		if e.builder.decryptor == nil {
			return nil, false, nil
		}
		plain, err := e.builder.decryptor(packet.TagSEIP, bytes.NewReader(v.Ciphertext))
		if err != nil {
			return nil, false, err
		}
		return plain, true, nil
	case packet.AEDV1:
		if e.builder.decryptor == nil {
			return nil, false, nil
		}
		plain, err := e.builder.decryptor(packet.TagAED, bytes.NewReader(v.Ciphertext))
		if err != nil {
			return nil, false, err
		}
		return plain, true, nil
	default:
		// Container tag whose body failed to decode (Unknown) or some
		// other unrecognized shape: nothing to recurse into.
		return nil, false, nil
	}
}
