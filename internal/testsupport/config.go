// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"ertnotes/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The source file exists and is empty unless WithSourceContent is used.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.SourceFile = filepath.Join(base, "cds.txt")
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	if err := os.WriteFile(cfgVal.Paths.SourceFile, nil, 0o644); err != nil {
		t.Fatalf("seed source file: %v", err)
	}

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithSourceContent writes the given export content to the test source file.
func WithSourceContent(content string) ConfigOption {
	return func(b *configBuilder) {
		b.t.Helper()
		if err := os.WriteFile(b.cfg.Paths.SourceFile, []byte(content), 0o644); err != nil {
			b.t.Fatalf("write source file: %v", err)
		}
	}
}

// WithRoster overrides the roster name list on the test config.
func WithRoster(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Roster.Names = names
	}
}

// WithSupervisorVisibility overrides the supervisor visibility policy.
func WithSupervisorVisibility(value string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Roster.SupervisorVisibility = value
	}
}
