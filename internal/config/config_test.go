package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "[paths]\nsource_file = \"/tmp/cds.txt\"\n")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("Load() resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Roster.Supervisor != "Slickduck" {
		t.Errorf("Supervisor = %q, want default", cfg.Roster.Supervisor)
	}
	if cfg.Roster.SupervisorVisibility != "non-roster" {
		t.Errorf("SupervisorVisibility = %q, want non-roster", cfg.Roster.SupervisorVisibility)
	}
	if cfg.Output.AssigneeSuffix != "-cds.txt" {
		t.Errorf("AssigneeSuffix = %q", cfg.Output.AssigneeSuffix)
	}
	if len(cfg.Roster.Names) == 0 {
		t.Error("default roster is empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"[paths]",
		`source_file = "/tmp/cds.txt"`,
		`output_dir = "/tmp/out"`,
		"",
		"[roster]",
		`names = ["Runnz", "Pv"]`,
		`supervisor = "Lead"`,
		`supervisor_visibility = "ALL"`,
		"",
		"[logging]",
		`format = "json"`,
	}, "\n"))

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Roster.Supervisor != "Lead" {
		t.Errorf("Supervisor = %q", cfg.Roster.Supervisor)
	}
	if cfg.Roster.SupervisorVisibility != "all" {
		t.Errorf("SupervisorVisibility = %q, want lowercased all", cfg.Roster.SupervisorVisibility)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
}

func TestLoadRequiresSourceFile(t *testing.T) {
	path := writeConfig(t, "[logging]\nlevel = \"debug\"\n")
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want missing source_file")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no roster", func(c *Config) { c.Roster.Names = nil; c.Roster.File = "" }},
		{"bad visibility", func(c *Config) { c.Roster.SupervisorVisibility = "sometimes" }},
		{"colliding outputs", func(c *Config) {
			c.Output.NonRosterFile = "same.txt"
			c.Output.EncapsulatedFile = "same.txt"
		}},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Paths.SourceFile = "/tmp/cds.txt"
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil")
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample() error = %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load(sample) error = %v", err)
	}
	if !exists {
		t.Error("sample config not detected")
	}
	if cfg.Paths.SourceFile == "" {
		t.Error("sample source_file empty after load")
	}
}

func TestNormalizeDropsBlankRosterNames(t *testing.T) {
	cfg := Default()
	cfg.Paths.SourceFile = "/tmp/cds.txt"
	cfg.Roster.Names = []string{" Runnz ", "", "Pv"}
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize() error = %v", err)
	}
	if len(cfg.Roster.Names) != 2 || cfg.Roster.Names[0] != "Runnz" {
		t.Errorf("Names = %v", cfg.Roster.Names)
	}
}

func TestAssigneeFileName(t *testing.T) {
	cfg := Default()
	if got := cfg.AssigneeFileName("Runnz"); got != "Runnz-cds.txt" {
		t.Errorf("AssigneeFileName() = %q", got)
	}
}
