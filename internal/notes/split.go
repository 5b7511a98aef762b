package notes

import "strings"

// SplitAssignee returns the event lines destined for one raider's file:
// for every event that assigns that raider at least one cooldown, the
// event's header followed by that raider's tokens in order. Events without
// a token for the raider contribute nothing, not even a blank line.
// Malformed headers degrade to PlaceholderHeader.
func SplitAssignee(lines []string, assignee string) []string {
	var out []string
	for _, line := range lines {
		var cds strings.Builder
		for _, tok := range TokensFor(line, assignee) {
			cds.WriteString(tok.Text)
		}
		if cds.Len() == 0 {
			continue
		}
		out = append(out, HeaderOrPlaceholder(line)+cds.String())
	}
	return out
}
