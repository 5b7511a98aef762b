package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ertnotes/internal/logging"
	"ertnotes/internal/pipeline"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show what a run would produce without writing any file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			r, err := ctx.ensureRoster()
			if err != nil {
				return err
			}

			runner, err := pipeline.New(cfg, r, logging.NewNop())
			if err != nil {
				return err
			}
			report, err := runner.Preview(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(report.Assignees))
			for _, a := range report.Assignees {
				rows = append(rows, []string{a.Name, strconv.Itoa(a.Events), strconv.Itoa(a.Tokens)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d events in %s\n", report.Events, report.SourcePath)
			fmt.Fprintln(out, renderRows(
				[]string{"Assignee", "Events", "Tokens"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Non-roster lines: %d, encapsulated events: %d\n",
				report.NonRosterLines, report.EncapsulatedEvents)
			if report.MalformedHeaders > 0 {
				fmt.Fprintf(out, "Warning: %d lines had malformed headers\n", report.MalformedHeaders)
			}
			return nil
		},
	}
}
