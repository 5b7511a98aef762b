package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ertnotes/internal/config"
	"ertnotes/internal/logging"
	"ertnotes/internal/pipeline"
	"ertnotes/internal/report"
	"ertnotes/internal/roster"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Transform the exported timeline into the derived files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			r, err := ctx.ensureRoster()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			runner, err := pipeline.New(cfg, r, logger)
			if err != nil {
				return err
			}
			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			recordRun(cmd, cfg, r, summary, logger)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed %d events from %s\n", summary.Events, summary.SourcePath)
			fmt.Fprintf(out, "Wrote %d assignee files, %d non-roster lines, %d encapsulated events to %s\n",
				len(summary.AssigneeLines), summary.NonRosterLines, summary.EncapsulatedEvents, cfg.Paths.OutputDir)
			if summary.MalformedHeaders > 0 {
				fmt.Fprintf(out, "Warning: %d lines had malformed headers (see log)\n", summary.MalformedHeaders)
			}
			return nil
		},
	}
}

// recordRun persists the run outcome. History is best-effort: a store
// failure is logged but never fails a run whose outputs were written.
func recordRun(cmd *cobra.Command, cfg *config.Config, r *roster.Roster, summary *pipeline.Summary, logger *slog.Logger) {
	store, err := report.Open(cfg)
	if err != nil {
		logger.Warn("open run history", slog.Any("error", err))
		return
	}
	defer store.Close()

	err = store.Record(cmd.Context(), report.Run{
		ID:                 summary.RunID,
		StartedAt:          summary.StartedAt,
		FinishedAt:         summary.FinishedAt,
		SourcePath:         summary.SourcePath,
		Events:             summary.Events,
		MalformedHeaders:   summary.MalformedHeaders,
		AssigneeFiles:      len(summary.AssigneeLines),
		NonRosterLines:     summary.NonRosterLines,
		EncapsulatedEvents: summary.EncapsulatedEvents,
		Supervisor:         r.Supervisor(),
		Policy:             r.Policy().String(),
	})
	if err != nil {
		logger.Warn("record run history", slog.Any("error", err))
	}
}
