package notes

import (
	"errors"
	"fmt"
	"regexp"
)

// headerPattern matches the ability-name/timestamp prefix of an event line.
// Both exported timer formats share the same shape, two hyphen-delimited
// segments followed by a space:
//
//	Dynamic: {time:00:00} |c00000000Name|r - 00:00 -
//	Static:  |c00000000Name|r - 00:00 -
var headerPattern = regexp.MustCompile(`^.*-.*?-\s`)

// PlaceholderHeader stands in for the header of a line that failed header
// extraction. It keeps downstream concatenation well-formed; it carries no
// meaningful content. Substituting it is a caller decision, not something
// ExtractHeader does on its own.
const PlaceholderHeader = " "

// ErrNoHeader reports an event line that does not start with the expected
// header shape.
var ErrNoHeader = errors.New("event line has no header")

// ExtractHeader returns the header prefix of an event line. A header is
// never itself a valid assignment token, so re-matching an extracted header
// yields nothing.
func ExtractHeader(line string) (string, error) {
	loc := headerPattern.FindStringIndex(line)
	if loc == nil {
		return "", fmt.Errorf("%w: %q", ErrNoHeader, line)
	}
	return line[loc[0]:loc[1]], nil
}

// HeaderOrPlaceholder extracts the header, falling back to
// PlaceholderHeader on malformed lines. Callers that need the failure
// itself should use ExtractHeader.
func HeaderOrPlaceholder(line string) string {
	header, err := ExtractHeader(line)
	if err != nil {
		return PlaceholderHeader
	}
	return header
}
