package pipeline

import (
	"context"

	"ertnotes/internal/notes"
)

// AssigneeCount is one roster member's share of the timeline.
type AssigneeCount struct {
	Name   string
	Events int
	Tokens int
}

// PreviewReport describes what a run would produce, without writing it.
type PreviewReport struct {
	SourcePath         string
	Events             int
	MalformedHeaders   int
	Assignees          []AssigneeCount
	NonRosterLines     int
	EncapsulatedEvents int
}

// Preview computes run results in memory. No output file is touched and no
// lock is taken; only the source must exist.
func (r *Runner) Preview(ctx context.Context) (*PreviewReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := readSourceLines(r.cfg.Paths.SourceFile)
	if err != nil {
		return nil, err
	}
	lines = notes.NormalizeLines(lines)

	report := &PreviewReport{
		SourcePath: r.cfg.Paths.SourceFile,
		Events:     len(lines),
	}
	for _, line := range lines {
		if _, err := notes.ExtractHeader(line); err != nil {
			report.MalformedHeaders++
		}
	}

	for _, name := range r.roster.Names() {
		count := AssigneeCount{Name: name}
		count.Events = len(notes.SplitAssignee(lines, name))
		for _, line := range lines {
			count.Tokens += len(notes.TokensFor(line, name))
		}
		report.Assignees = append(report.Assignees, count)
	}

	report.NonRosterLines = len(notes.StripRoster(lines, r.roster))
	for _, line := range lines {
		if len(notes.Tokens(line)) > 0 {
			report.EncapsulatedEvents++
		}
	}
	return report, nil
}
