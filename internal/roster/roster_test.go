package roster

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"ertnotes/internal/config"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		names      []string
		supervisor string
		wantErr    bool
	}{
		{"valid", []string{"Runnz", "Pv"}, "Slickduck", false},
		{"empty names", nil, "Slickduck", true},
		{"blank name", []string{"Runnz", " "}, "Slickduck", true},
		{"duplicate name", []string{"Runnz", "Runnz"}, "Slickduck", true},
		{"blank supervisor", []string{"Runnz"}, "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.names, tt.supervisor, VisibilityAll)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRosterOrderAndMembership(t *testing.T) {
	names := []string{"Hôsteric", "Delvur", "Runnz"}
	r, err := New(names, "Slickduck", VisibilityNonRoster)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := r.Names(); !reflect.DeepEqual(got, names) {
		t.Errorf("Names() = %v, want %v", got, names)
	}
	if !r.Contains("Runnz") {
		t.Error("Contains(Runnz) = false")
	}
	if r.Contains("Pv") {
		t.Error("Contains(Pv) = true")
	}
	// Decomposed spelling of Hôsteric.
	if !r.Contains("Hôsteric") {
		t.Error("Contains(decomposed Hôsteric) = false")
	}
}

func TestSupervisorSees(t *testing.T) {
	tests := []struct {
		name       string
		visibility Visibility
		assignee   string
		want       bool
	}{
		{"all roster member", VisibilityAll, "Runnz", true},
		{"all outsider", VisibilityAll, "Pv", true},
		{"roster member", VisibilityRoster, "Runnz", true},
		{"roster outsider", VisibilityRoster, "Pv", false},
		{"non-roster member", VisibilityNonRoster, "Runnz", false},
		{"non-roster outsider", VisibilityNonRoster, "Pv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New([]string{"Runnz"}, "Slickduck", tt.visibility)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := r.SupervisorSees(tt.assignee); got != tt.want {
				t.Errorf("SupervisorSees(%s) = %v, want %v", tt.assignee, got, tt.want)
			}
		})
	}
}

func TestFromConfigInlineNames(t *testing.T) {
	cfg := config.Default()
	cfg.Roster.Names = []string{"Runnz", "Pv"}
	cfg.Roster.Supervisor = "Slickduck"
	cfg.Roster.SupervisorVisibility = "all"

	r, err := FromConfig(&cfg)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if r.Policy() != VisibilityAll {
		t.Errorf("Policy() = %v, want all", r.Policy())
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"Runnz", "Pv"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestFromConfigRosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte("names:\n  - Runnz\n  - Pv\n"), 0o644); err != nil {
		t.Fatalf("write roster file: %v", err)
	}

	cfg := config.Default()
	cfg.Roster.Names = []string{"ignored"}
	cfg.Roster.File = path

	r, err := FromConfig(&cfg)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"Runnz", "Pv"}) {
		t.Errorf("Names() = %v, want file contents", got)
	}
}
