package rfc4880

import (
	"bufio"
	"errors"
)

// ErrContinue is a special SplitFunc signal telling MakeSplitFuncExitByAdvance
// to keep seeking a token instead of returning, for split funcs that need a
// retry to let some internal state settle (such as skipping blank lines).
var ErrContinue = errors.New("rfc4880: split func continue")

// MakeSplitFuncExitByAdvance adapts split so that it only stops the scan
// when it genuinely has nothing left to offer (atEOF with no further
// advance possible), rather than on the standard library's stricter rule
// of stopping whenever atEOF and the wrapped func returns a nil token.
// That stricter rule forces every bufio.SplitFunc to carry its own inner
// retry loop to skip non-tokens (blank lines, padding); this wrapper
// reuses the scanner's own outer loop for that instead.
func MakeSplitFuncExitByAdvance(split bufio.SplitFunc) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		totalAdvance := 0
		for {
			advance, token, err := split(data, atEOF)

			if !errors.Is(err, ErrContinue) && (token != nil || advance == 0 || len(data)-advance <= 0 || err != nil) {
				return totalAdvance + advance, token, err
			}

			data = data[advance:]
			totalAdvance += advance
		}
	}
}
