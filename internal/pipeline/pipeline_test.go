package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ertnotes/internal/config"
	"ertnotes/internal/logging"
	"ertnotes/internal/roster"
	"ertnotes/internal/testsupport"
)

const sampleExport = "EventA - 00:30 - |cfff38bb9Runnz|r  {spell:111}  |c00ff0000Pv|r  {spell:222}  \n" +
	"EventB - 01:00 - |cfff38bb9Runnz|r  {spell:333}  \n" +
	"EventC - 01:30 - \n"

func newRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()
	r, err := roster.FromConfig(cfg)
	if err != nil {
		t.Fatalf("roster.FromConfig() error = %v", err)
	}
	runner, err := New(cfg, r, logging.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return runner
}

func readOutput(t *testing.T, cfg *config.Config, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, name))
	if err != nil {
		t.Fatalf("read output %s: %v", name, err)
	}
	return string(data)
}

func TestRunWritesDerivedFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithRoster("Runnz"),
		testsupport.WithSourceContent(sampleExport),
	)
	runner := newRunner(t, cfg)

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := readOutput(t, cfg, "Runnz-cds.txt"); got != "EventA - 00:30 - |cfff38bb9Runnz|r  {spell:111}  \n"+
		"EventB - 01:00 - |cfff38bb9Runnz|r  {spell:333}  \n" {
		t.Errorf("Runnz file = %q", got)
	}
	if got := readOutput(t, cfg, cfg.Output.NonRosterFile); got != "EventA - 00:30 - |c00ff0000Pv|r  {spell:222}  \n" {
		t.Errorf("non-roster file = %q", got)
	}
	wantNote := "{p:Runnz,Pv,Slickduck}EventA - 00:30 - {/p}" +
		"{p:Runnz}|cfff38bb9Runnz|r  {spell:111}  {/p}" +
		"{p:Slickduck,Pv}|c00ff0000Pv|r  {spell:222}  {/p}\n" +
		"{p:Runnz}EventB - 01:00 - {/p}" +
		"{p:Runnz}|cfff38bb9Runnz|r  {spell:333}  {/p}\n"
	if got := readOutput(t, cfg, cfg.Output.EncapsulatedFile); got != wantNote {
		t.Errorf("encapsulated file = %q, want %q", got, wantNote)
	}

	if summary.Events != 3 {
		t.Errorf("Events = %d, want 3", summary.Events)
	}
	if summary.MalformedHeaders != 0 {
		t.Errorf("MalformedHeaders = %d, want 0", summary.MalformedHeaders)
	}
	if summary.AssigneeLines["Runnz"] != 2 {
		t.Errorf("AssigneeLines[Runnz] = %d, want 2", summary.AssigneeLines["Runnz"])
	}
	if summary.NonRosterLines != 1 {
		t.Errorf("NonRosterLines = %d, want 1", summary.NonRosterLines)
	}
	if summary.EncapsulatedEvents != 2 {
		t.Errorf("EncapsulatedEvents = %d, want 2", summary.EncapsulatedEvents)
	}
	if summary.RunID == "" {
		t.Error("RunID empty")
	}
}

func TestRunCountsMalformedHeaders(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithRoster("Runnz"),
		testsupport.WithSourceContent("|cfff38bb9Runnz|r  {spell:111}  \n"),
	)
	runner := newRunner(t, cfg)

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.MalformedHeaders != 1 {
		t.Errorf("MalformedHeaders = %d, want 1", summary.MalformedHeaders)
	}
	// The token still lands in the assignee file, behind the placeholder.
	if got := readOutput(t, cfg, "Runnz-cds.txt"); got != " |cfff38bb9Runnz|r  {spell:111}  \n" {
		t.Errorf("Runnz file = %q", got)
	}
}

func TestRunMissingSourceLeavesOutputsIntact(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithRoster("Runnz"))
	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatalf("mkdir output: %v", err)
	}
	previous := filepath.Join(cfg.Paths.OutputDir, "Runnz-cds.txt")
	if err := os.WriteFile(previous, []byte("earlier run\n"), 0o644); err != nil {
		t.Fatalf("seed previous output: %v", err)
	}
	if err := os.Remove(cfg.Paths.SourceFile); err != nil {
		t.Fatalf("remove source: %v", err)
	}

	runner := newRunner(t, cfg)
	if _, err := runner.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want missing source failure")
	}

	data, err := os.ReadFile(previous)
	if err != nil {
		t.Fatalf("read previous output: %v", err)
	}
	if string(data) != "earlier run\n" {
		t.Errorf("previous output clobbered: %q", data)
	}
}

func TestRunTruncatesPriorOutputs(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithRoster("Runnz"),
		testsupport.WithSourceContent(sampleExport),
	)
	runner := newRunner(t, cfg)
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	if err := os.WriteFile(cfg.Paths.SourceFile, []byte("EventZ - 09:00 - |c00ff0000Pv|r  {spell:9}  \n"), 0o644); err != nil {
		t.Fatalf("rewrite source: %v", err)
	}
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if got := readOutput(t, cfg, "Runnz-cds.txt"); got != "" {
		t.Errorf("Runnz file not truncated: %q", got)
	}
	if got := readOutput(t, cfg, cfg.Output.NonRosterFile); got != "EventZ - 09:00 - |c00ff0000Pv|r  {spell:9}  \n" {
		t.Errorf("non-roster file = %q", got)
	}
}

func TestRunCanceledContext(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithRoster("Runnz"))
	runner := newRunner(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runner.Run(ctx); err == nil {
		t.Fatal("Run(canceled) error = nil")
	}
}

func TestPreview(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithRoster("Runnz"),
		testsupport.WithSourceContent(sampleExport),
	)
	runner := newRunner(t, cfg)

	report, err := runner.Preview(context.Background())
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if report.Events != 3 {
		t.Errorf("Events = %d, want 3", report.Events)
	}
	if len(report.Assignees) != 1 || report.Assignees[0].Events != 2 || report.Assignees[0].Tokens != 2 {
		t.Errorf("Assignees = %+v", report.Assignees)
	}
	if report.NonRosterLines != 1 || report.EncapsulatedEvents != 2 {
		t.Errorf("NonRosterLines = %d, EncapsulatedEvents = %d", report.NonRosterLines, report.EncapsulatedEvents)
	}

	// Preview never creates outputs.
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "Runnz-cds.txt")); !os.IsNotExist(err) {
		t.Errorf("preview touched outputs: %v", err)
	}
}
