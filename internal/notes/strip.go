package notes

import (
	"strings"

	"ertnotes/internal/roster"
)

// StripRoster returns the non-roster view of the timeline: every event
// whose content is not exclusively roster-owned, with all roster tokens
// removed and the header re-attached. Events that held only roster tokens
// vanish entirely.
//
// Roster tokens are excluded in a single span scan over each line rather
// than by repeated search-and-remove, so a token that happens to be a
// substring of another cannot corrupt its neighbours.
func StripRoster(lines []string, r *roster.Roster) []string {
	var out []string
	for _, line := range lines {
		header := HeaderOrPlaceholder(line)
		rest := strings.Replace(line, header, "", 1)
		rest = strings.TrimRight(rest, "\r\n")

		remainder := excludeRosterSpans(rest, r)
		if remainder == "" {
			continue
		}
		out = append(out, header+remainder)
	}
	return out
}

// excludeRosterSpans rebuilds text without the spans of tokens owned by
// roster members, leaving all other text byte-for-byte intact.
func excludeRosterSpans(text string, r *roster.Roster) string {
	var b strings.Builder
	last := 0
	for _, tok := range Tokens(text) {
		if !r.Contains(tok.Assignee) {
			continue
		}
		b.WriteString(text[last:tok.start])
		last = tok.end
	}
	b.WriteString(text[last:])
	return b.String()
}
