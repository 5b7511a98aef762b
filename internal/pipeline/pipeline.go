package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"ertnotes/internal/config"
	"ertnotes/internal/notes"
	"ertnotes/internal/roster"
	"ertnotes/internal/textutil"
)

// lockFileName guards the output directory against concurrent runs.
const lockFileName = ".ertnotes.lock"

// Summary reports what one run produced.
type Summary struct {
	RunID      string
	SourcePath string
	StartedAt  time.Time
	FinishedAt time.Time

	Events             int
	MalformedHeaders   int
	AssigneeLines      map[string]int
	NonRosterLines     int
	EncapsulatedEvents int
}

// Duration returns the wall time the run took.
func (s *Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// Runner executes the full transform over one configured source.
type Runner struct {
	cfg    *config.Config
	roster *roster.Roster
	logger *slog.Logger
}

// New constructs a Runner. A nil logger falls back to a discarding one.
func New(cfg *config.Config, r *roster.Roster, logger *slog.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("pipeline: config is required")
	}
	if r == nil {
		return nil, errors.New("pipeline: roster is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{cfg: cfg, roster: r, logger: logger}, nil
}

// Run reads the source export and writes every derived timeline. The source
// is read before any output is truncated; a missing source aborts the run
// with previous outputs intact. Malformed headers are logged, counted, and
// degraded to a placeholder without stopping the run.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:         uuid.NewString(),
		SourcePath:    r.cfg.Paths.SourceFile,
		StartedAt:     time.Now().UTC(),
		AssigneeLines: make(map[string]int),
	}
	logger := r.logger.With(slog.String("run_id", summary.RunID))

	lines, err := readSourceLines(r.cfg.Paths.SourceFile)
	if err != nil {
		return nil, err
	}
	lines = notes.NormalizeLines(lines)
	summary.Events = len(lines)
	summary.MalformedHeaders = logMalformedHeaders(logger, lines)

	outputDir := r.cfg.Paths.OutputDir
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", outputDir, err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %s is locked by another run", outputDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := r.writeOutputs(lines, summary); err != nil {
		return nil, err
	}

	summary.FinishedAt = time.Now().UTC()
	logger.Info("run complete",
		slog.Int("events", summary.Events),
		slog.Int("malformed_headers", summary.MalformedHeaders),
		slog.Int("non_roster_lines", summary.NonRosterLines),
		slog.Int("encapsulated_events", summary.EncapsulatedEvents),
		slog.Duration("duration", summary.Duration()),
	)
	return summary, nil
}

// writeOutputs truncates and fills every output file. All sinks are closed
// on every exit path.
func (r *Runner) writeOutputs(lines []string, summary *Summary) (err error) {
	var sinks sinkSet
	defer func() {
		if closeErr := sinks.closeAll(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, name := range r.roster.Names() {
		s, err := sinks.open(r.assigneePath(name))
		if err != nil {
			return err
		}
		events := notes.SplitAssignee(lines, name)
		for _, event := range events {
			if err := s.writeLine(event); err != nil {
				return err
			}
		}
		summary.AssigneeLines[name] = len(events)
	}

	nonRoster, err := sinks.open(filepath.Join(r.cfg.Paths.OutputDir, r.cfg.Output.NonRosterFile))
	if err != nil {
		return err
	}
	for _, event := range notes.StripRoster(lines, r.roster) {
		if err := nonRoster.writeLine(event); err != nil {
			return err
		}
		summary.NonRosterLines++
	}

	encapsulated, err := sinks.open(filepath.Join(r.cfg.Paths.OutputDir, r.cfg.Output.EncapsulatedFile))
	if err != nil {
		return err
	}
	note := notes.Encapsulate(lines, r.roster)
	if err := encapsulated.writeAll(note); err != nil {
		return err
	}
	summary.EncapsulatedEvents = strings.Count(note, "\n")

	return nil
}

func (r *Runner) assigneePath(name string) string {
	file := r.cfg.AssigneeFileName(textutil.SanitizeFileName(name))
	return filepath.Join(r.cfg.Paths.OutputDir, file)
}

// readSourceLines reads the whole export, keeping each line's terminator as
// part of the raw line. A trailing empty segment after the final terminator
// is not an event.
func readSourceLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", path, err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// logMalformedHeaders emits one error-level record per line that fails
// header extraction and returns how many there were. The transforms degrade
// those lines to notes.PlaceholderHeader.
func logMalformedHeaders(logger *slog.Logger, lines []string) int {
	malformed := 0
	for _, line := range lines {
		if _, err := notes.ExtractHeader(line); err != nil {
			malformed++
			logger.Error("parse event header", slog.String("line", strings.TrimRight(line, "\r\n")), slog.Any("error", err))
		}
	}
	return malformed
}
