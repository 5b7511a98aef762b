package roster

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"ertnotes/internal/config"
)

// Roster is the ordered privileged assignee group plus the supervisor role
// and its visibility policy. Construct with New or FromConfig; the zero
// value is not usable.
type Roster struct {
	names      []string
	members    map[string]struct{}
	supervisor string
	visibility Visibility
}

// New builds a roster from an ordered name list. Names are kept in the
// given order; membership lookups use their NFC form. Duplicate or blank
// names and a blank supervisor are rejected.
func New(names []string, supervisor string, visibility Visibility) (*Roster, error) {
	if len(names) == 0 {
		return nil, errors.New("roster: at least one name is required")
	}
	supervisor = strings.TrimSpace(supervisor)
	if supervisor == "" {
		return nil, errors.New("roster: supervisor name is required")
	}

	ordered := make([]string, 0, len(names))
	members := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("roster: blank name")
		}
		key := norm.NFC.String(name)
		if _, ok := members[key]; ok {
			return nil, fmt.Errorf("roster: duplicate name %q", name)
		}
		members[key] = struct{}{}
		ordered = append(ordered, name)
	}

	return &Roster{
		names:      ordered,
		members:    members,
		supervisor: supervisor,
		visibility: visibility,
	}, nil
}

// FromConfig builds the roster described by the configuration, reading the
// roster file when one is configured instead of the inline name list.
func FromConfig(cfg *config.Config) (*Roster, error) {
	if cfg == nil {
		return nil, errors.New("roster: config is required")
	}

	visibility, err := ParseVisibility(cfg.Roster.SupervisorVisibility)
	if err != nil {
		return nil, err
	}

	names := cfg.Roster.Names
	if strings.TrimSpace(cfg.Roster.File) != "" {
		names, err = LoadNamesFile(cfg.Roster.File)
		if err != nil {
			return nil, err
		}
	}

	return New(names, cfg.Roster.Supervisor, visibility)
}

// Names returns the roster in configured order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether name is a roster member. Comparison is
// NFC-normalized.
func (r *Roster) Contains(name string) bool {
	_, ok := r.members[norm.NFC.String(name)]
	return ok
}

// Supervisor returns the supervisor's name.
func (r *Roster) Supervisor() string {
	return r.supervisor
}

// Policy returns the supervisor visibility policy.
func (r *Roster) Policy() Visibility {
	return r.visibility
}

// SupervisorSees reports whether the supervisor may see assignments owned
// by the given assignee under the configured policy.
func (r *Roster) SupervisorSees(assignee string) bool {
	switch r.visibility {
	case VisibilityAll:
		return true
	case VisibilityRoster:
		return r.Contains(assignee)
	case VisibilityNonRoster:
		return !r.Contains(assignee)
	default:
		return false
	}
}
