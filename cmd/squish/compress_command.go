package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"squish/internal/compress"
)

func newCompressCommand(ctx *commandContext) *cobra.Command {
	var presetFlag string
	var gpuFlag bool
	var noProgressFlag bool

	cmd := &cobra.Command{
		Use:   "compress INPUT [OUTPUT]",
		Short: "Compress a single video",
		Long: `Compress a single video with the selected quality preset.

The preset may be a single name, a comma-separated list, or "all"; with
more than one preset each output is named after its preset and an
explicit OUTPUT argument is ignored.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			presets, err := parsePresetFlag(cfg, presetFlag)
			if err != nil {
				return err
			}

			compressor, cleanup, err := ctx.newCompressor(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			printBanner(ctx, out)

			input := args[0]
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			showProgress := !noProgressFlag && stderrIsTerminal()

			if len(presets) > 1 {
				if output != "" {
					fmt.Fprintf(out, "Multiple presets selected; ignoring output path %s\n", output)
				}
				summary := compressor.MultiPreset(cmd.Context(), input, presets, gpuFlag, showProgress)
				printSummary(out, cfg, summary)
				if len(summary.Failures) > 0 {
					return fmt.Errorf("%d of %d presets failed", len(summary.Failures), summary.Attempted())
				}
				return nil
			}

			result, err := compressor.Compress(cmd.Context(), compress.Request{
				Input:        input,
				Output:       output,
				Preset:       presets[0],
				UseGPU:       gpuFlag,
				ShowProgress: showProgress,
			})
			if err != nil {
				return err
			}
			printResult(out, cfg, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Quality preset, a comma-separated list, or \"all\"")
	cmd.Flags().BoolVar(&gpuFlag, "gpu", false, "Prefer a hardware encoder when one is available")
	cmd.Flags().BoolVar(&noProgressFlag, "no-progress", false, "Disable the progress bar")
	return cmd
}
