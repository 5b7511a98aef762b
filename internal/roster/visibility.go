package roster

import (
	"fmt"
	"strings"
)

// Visibility selects which assignment owners the supervisor is added to
// visibility lists for.
type Visibility int

const (
	// VisibilityAll shows the supervisor every assignment.
	VisibilityAll Visibility = iota
	// VisibilityRoster shows the supervisor only roster members' assignments.
	VisibilityRoster
	// VisibilityNonRoster shows the supervisor only non-roster assignments.
	VisibilityNonRoster
)

// ParseVisibility converts a configuration string into a Visibility.
func ParseVisibility(value string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "all":
		return VisibilityAll, nil
	case "roster":
		return VisibilityRoster, nil
	case "non-roster", "":
		return VisibilityNonRoster, nil
	default:
		return VisibilityNonRoster, fmt.Errorf("roster: unsupported supervisor visibility %q (use all, roster, or non-roster)", value)
	}
}

// String returns the configuration spelling of the policy.
func (v Visibility) String() string {
	switch v {
	case VisibilityAll:
		return "all"
	case VisibilityRoster:
		return "roster"
	case VisibilityNonRoster:
		return "non-roster"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}
