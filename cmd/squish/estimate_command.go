package main

import (
	"github.com/spf13/cobra"
)

func newEstimateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate INPUT",
		Short: "Estimate compressed sizes for every preset",
		Long: `Estimate the compressed size of INPUT under each quality preset.

Estimates come from typical compression ratios, not from encoding, so
treat them as a guide for preset selection rather than a guarantee.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return printEstimates(cmd.OutOrStdout(), cfg, args[0])
		},
	}
}
