package packet

import "io"

// Unknown is the fallback body for any tag this package does not parse,
// or for a known tag whose body failed to decode. Err is nil in the
// former case and the decode failure in the latter; either way Body
// holds every byte of the raw payload so the packet still round-trips.
type Unknown struct {
	RawTag Tag
	Body   []byte
	Err    error
}

func (u Unknown) packetTag() Tag { return u.RawTag }

func parseUnknown(tag Tag) func(io.Reader) (Body, error) {
	return func(r io.Reader) (Body, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, malformed(tag, "body truncated", err)
		}
		return Unknown{RawTag: tag, Body: data}, nil
	}
}
