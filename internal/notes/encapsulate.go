package notes

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"ertnotes/internal/roster"
)

// WrapVisibility wraps text in an ERT positive-visibility tag pair. Only
// raiders named in viewers will have the wrapped text rendered.
func WrapVisibility(text string, viewers []string) string {
	return "{p:" + strings.Join(viewers, ",") + "}" + text + "{/p}"
}

// Encapsulate renders the whole timeline as one ERT note where every
// cooldown is visible only to its owner plus, policy permitting, the
// supervisor. Header visibility per event is the union of that event's
// assignees; the supervisor joins the header list when any token in the
// event is supervisor-visible. Events without tokens are omitted, so the
// result never contains a tag pair with an empty body.
//
// Viewer lists are deterministic: assignees in first-seen order, the
// supervisor appended last, no duplicates.
func Encapsulate(lines []string, r *roster.Roster) string {
	var buf strings.Builder
	for _, line := range lines {
		tokens := Tokens(line)
		if len(tokens) == 0 {
			continue
		}

		var cds strings.Builder
		var headerViewers []string
		seen := make(map[string]struct{}, len(tokens))
		supervisorSeesHeader := false

		for _, tok := range tokens {
			supervisorSees := r.SupervisorSees(tok.Assignee)
			supervisorSeesHeader = supervisorSeesHeader || supervisorSees
			cds.WriteString(WrapVisibility(tok.Text, tokenViewers(tok.Assignee, supervisorSees, r.Supervisor())))

			key := norm.NFC.String(tok.Assignee)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				headerViewers = append(headerViewers, tok.Assignee)
			}
		}

		if supervisorSeesHeader {
			if _, ok := seen[norm.NFC.String(r.Supervisor())]; !ok {
				headerViewers = append(headerViewers, r.Supervisor())
			}
		}

		buf.WriteString(WrapVisibility(HeaderOrPlaceholder(line), headerViewers))
		buf.WriteString(cds.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}

// tokenViewers builds one token's viewer list: the supervisor first when
// included, then the owner, never the same name twice.
func tokenViewers(assignee string, supervisorSees bool, supervisor string) []string {
	if supervisorSees && norm.NFC.String(supervisor) != norm.NFC.String(assignee) {
		return []string{supervisor, assignee}
	}
	return []string{assignee}
}
