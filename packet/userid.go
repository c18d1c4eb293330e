package packet

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/zostay/go-addr/pkg/addr"
	"golang.org/x/text/encoding/charmap"
)

// UserID is a User ID packet (RFC 4880 §5.11): a UTF-8 string by
// convention formatted as an RFC 2822 "Name <email>" mailbox, though
// RFC 4880 does not require that shape.
type UserID struct {
	Value string
}

func (UserID) packetTag() Tag { return TagUserID }

func parseUserID(r io.Reader) (Body, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(TagUserID, "body truncated", err)
	}
	return UserID{Value: string(data)}, nil
}

// Address parses Value as an RFC 2822 mailbox and returns its address
// component. Many real-world User IDs are not valid mailboxes (bare
// names, comments-only strings); Address returns ErrNoAddress when Value
// has no bracketed "<...>" address to parse, which is legal, rather than
// surfacing that as a malformed packet.
func (u UserID) Address() (addr.Address, error) {
	if !strings.Contains(u.Value, "<") || !strings.Contains(u.Value, ">") {
		return nil, ErrNoAddress
	}
	return addr.ParseEmailAddress(u.Value)
}

// Text returns Value decoded as text. RFC 4880 mandates UTF-8, but
// several old implementations emitted ISO-8859-1; when Value is not
// valid UTF-8 this falls back to decoding it as ISO-8859-1 rather than
// returning replacement characters.
func (u UserID) Text() (string, error) {
	if utf8.ValidString(u.Value) {
		return u.Value, nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(u.Value)
	if err != nil {
		return "", err
	}
	return decoded, nil
}
