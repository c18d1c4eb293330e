package armor

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/SOF3/go-openpgp/internal/rfc4880"
	"github.com/SOF3/go-openpgp/packet"
)

const (
	beginPrefix = "-----BEGIN PGP "
	endPrefix   = "-----END PGP "
	lineSuffix  = "-----"
)

// Block is a fully decoded armor block: its kind, the header lines
// between the BEGIN line and the blank separator, and the decoded
// binary body with its checksum already verified.
type Block struct {
	Kind    Kind
	Headers Headers
	Body    []byte

	// Truncated is true when the body and (if present) its checksum
	// decoded and verified cleanly but the input ended before an END
	// line was found. Per the non-fatal-trailer policy, this is not an
	// error: Body still holds everything that was decoded.
	Truncated bool
}

// Decode reads one armor block from r. It recognizes the BEGIN/END
// framing, the optional header lines, the Base64 body (whitespace
// inside it is ignored), and the optional `=`-prefixed CRC24 line.
//
// A mismatched checksum is fatal (BadChecksumError); when the checksum
// line is absent, no checksum is verified. A missing BEGIN line anywhere in the input is reported as ErrNoArmor. A
// missing END line after an otherwise-valid body is not fatal: Decode
// returns the decoded Block with Truncated set instead of an error.
func Decode(r io.Reader) (*Block, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	sc.Split(rfc4880.MakeSplitFuncExitByAdvance(bufio.ScanLines))

	kind, found, err := scanToBegin(sc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoArmor
	}

	headers, err := scanHeaders(sc)
	if err != nil {
		return nil, err
	}

	bodyText, checksumLine, foundEnd, err := scanBodyAndChecksum(sc, kind)
	if err != nil {
		return nil, err
	}

	body, err := base64.StdEncoding.DecodeString(bodyText)
	if err != nil {
		return nil, fmt.Errorf("%w: body is not valid base64: %v", ErrMalformedFraming, err)
	}

	if checksumLine != "" {
		want, err := decodeChecksumLine(checksumLine)
		if err != nil {
			return nil, err
		}
		got := crc24(body)
		if want != got {
			return nil, &packet.BadChecksumError{Want: want, Got: got}
		}
	}

	return &Block{Kind: kind, Headers: headers, Body: body, Truncated: !foundEnd}, nil
}

func scanToBegin(sc *bufio.Scanner) (Kind, bool, error) {
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if !strings.HasPrefix(line, beginPrefix) || !strings.HasSuffix(line, lineSuffix) {
			continue
		}
		name := line[len(beginPrefix) : len(line)-len(lineSuffix)]
		kind := Kind(name)
		if !knownKinds[kind] {
			return "", false, fmt.Errorf("%w: %q", ErrUnknownKind, name)
		}
		return kind, true, nil
	}
	if err := sc.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

func scanHeaders(sc *bufio.Scanner) (Headers, error) {
	var headers Headers
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			return headers, nil
		}
		h, err := parseHeaderLine(line)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: armor body never started (no blank line after headers)", ErrMalformedFraming)
}

// scanBodyAndChecksum reads body lines up to the END line. Reaching the
// end of input first is reported via foundEnd == false rather than an
// error: the spec's error-handling design treats a missing trailer after
// an otherwise-complete body as a non-fatal warning, not a framing
// failure, so the caller still gets back everything that was decoded.
func scanBodyAndChecksum(sc *bufio.Scanner, kind Kind) (body string, checksumLine string, foundEnd bool, err error) {
	var sb strings.Builder
	endLine := endPrefix + string(kind) + lineSuffix

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case line == endLine:
			return sb.String(), checksumLine, true, nil
		case strings.HasPrefix(line, endPrefix):
			return "", "", false, fmt.Errorf("%w: END line kind does not match BEGIN line", ErrMalformedFraming)
		case strings.HasPrefix(line, "="):
			if checksumLine != "" {
				return "", "", false, fmt.Errorf("%w: multiple checksum lines", ErrMalformedFraming)
			}
			checksumLine = line
		default:
			sb.WriteString(strings.TrimSpace(line))
		}
	}
	if err := sc.Err(); err != nil {
		return "", "", false, err
	}
	return sb.String(), checksumLine, false, nil
}

func decodeChecksumLine(line string) (uint32, error) {
	raw, err := base64.StdEncoding.DecodeString(line[1:])
	if err != nil || len(raw) != 3 {
		return 0, fmt.Errorf("%w: malformed checksum line %q", ErrMalformedFraming, line)
	}
	return uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2]), nil
}
