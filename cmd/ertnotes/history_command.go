package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"ertnotes/internal/report"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := report.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format(time.DateTime),
					strconv.Itoa(run.Events),
					strconv.Itoa(run.MalformedHeaders),
					strconv.Itoa(run.NonRosterLines),
					strconv.Itoa(run.EncapsulatedEvents),
					run.Policy,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows(
				[]string{"Started", "Events", "Malformed", "Non-roster", "Encapsulated", "Policy"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to list")
	return cmd
}
