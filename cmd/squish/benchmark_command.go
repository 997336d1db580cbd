package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"squish/internal/benchmark"
	"squish/internal/compress"
	"squish/internal/textutil"
)

func newBenchmarkCommand(ctx *commandContext) *cobra.Command {
	var outputDirFlag string
	var keepHistoryFlag bool

	cmd := &cobra.Command{
		Use:   "benchmark INPUT",
		Short: "Benchmark encoder performance with a sample video",
		Long: `Benchmark encoder performance by compressing INPUT across a matrix
of quality presets and CPU/GPU encoders, then comparing each leg
against the CPU medium baseline. GPU legs are skipped when no hardware
encoder works on this machine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBanner(ctx, out)

			var recorder compress.Recorder
			if keepHistoryFlag {
				opened, cleanup, err := ctx.openRecorder(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()
				recorder = opened
			}

			runner := benchmark.NewRunner(cfg, logger, recorder)
			report, err := runner.Run(cmd.Context(), args[0], outputDirFlag)
			if err != nil {
				return err
			}
			printReport(out, report)
			if len(report.Legs) == 0 {
				return fmt.Errorf("no benchmark legs completed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", benchmark.DefaultOutputDir, "Directory for benchmark artifacts")
	cmd.Flags().BoolVar(&keepHistoryFlag, "record", false, "Record benchmark runs in history")
	return cmd
}

func printReport(out io.Writer, report benchmark.Report) {
	rows := make([][]string, 0, len(report.Legs))
	for _, leg := range report.Legs {
		rows = append(rows, []string{
			textutil.CapitalizeASCII(leg.Leg.Preset.Name),
			leg.Leg.Label(),
			textutil.FormatElapsed(leg.Result.Elapsed),
			formatBytes(leg.Result.OutputBytes),
			formatRatio(leg.Result.Ratio()),
			fmt.Sprintf("%.1f MB/s", leg.Efficiency()),
			report.SpeedLabel(leg),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Preset", "Encoder", "Time", "Size", "Saved", "Throughput", "Vs baseline"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	))

	for _, skipped := range report.Skipped {
		fmt.Fprintf(out, "Skipped %s: %s\n", skipped.Leg.Name(), skipped.Reason)
	}

	analysis := report.Analyze()
	fmt.Fprintln(out)
	if analysis.FastestCPU != nil {
		fmt.Fprintf(out, "Fastest CPU leg: %s (%s)\n",
			analysis.FastestCPU.Leg.Name(), textutil.FormatElapsed(analysis.FastestCPU.Result.Elapsed))
	}
	if analysis.FastestGPU != nil {
		fmt.Fprintf(out, "Fastest GPU leg: %s (%s)\n",
			analysis.FastestGPU.Leg.Name(), textutil.FormatElapsed(analysis.FastestGPU.Result.Elapsed))
	}
	if analysis.GPUSpeedup > 0 {
		fmt.Fprintf(out, "GPU speedup at matching preset: %.1fx\n", analysis.GPUSpeedup)
	}
	if analysis.BestValue != nil {
		fmt.Fprintf(out, "Best quality per second: %s\n", analysis.BestValue.Leg.Name())
	}
	fmt.Fprintf(out, "Benchmark finished in %s\n", textutil.FormatElapsed(report.Elapsed))
}
