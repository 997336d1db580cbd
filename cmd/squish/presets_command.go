package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"squish/internal/preset"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "presets",
		Short:       "List the available quality presets",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(preset.All()))
			for _, p := range preset.All() {
				rows = append(rows, []string{
					p.Name,
					p.Description,
					p.BestFor,
					fmt.Sprint(p.CRF),
					p.Speed,
					p.MaxRate,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Preset", "Description", "Best for", "CRF", "Speed", "Max rate"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight}))
			return nil
		},
	}
}
