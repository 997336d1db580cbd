package main

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"squish/internal/history"
	"squish/internal/textutil"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent compression runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				saved := "n/a"
				if run.Success && run.InputBytes > 0 {
					saved = formatRatio((1 - float64(run.OutputBytes)/float64(run.InputBytes)) * 100)
				}
				outcome := "ok"
				if !run.Success {
					outcome = "failed"
				}
				rows = append(rows, []string{
					humanize.Time(run.CreatedAt),
					run.Kind,
					filepath.Base(run.Input),
					run.Preset,
					run.Encoder,
					saved,
					textutil.FormatElapsed(run.Elapsed),
					outcome,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Kind", "Input", "Preset", "Encoder", "Saved", "Time", "Result"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}
