package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"squish/internal/compress"
	"squish/internal/config"
	"squish/internal/preset"
	"squish/internal/textutil"
)

func formatBytes(value int64) string {
	if value < 0 {
		value = 0
	}
	return humanize.IBytes(uint64(value))
}

func formatRatio(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// printResult renders the outcome of a single compression run.
func printResult(out io.Writer, cfg *config.Config, result compress.Result) {
	limit := cfg.SizeLimitBytes()

	rows := [][]string{
		{"Output", result.Output},
		{"Preset", textutil.CapitalizeASCII(result.Preset)},
		{"Encoder", result.Encoder},
		{"Original size", formatBytes(result.InputBytes)},
		{"Compressed size", formatBytes(result.OutputBytes)},
		{"Space saved", fmt.Sprintf("%s (%s)", formatBytes(result.SpaceSaved()), formatRatio(result.Ratio()))},
		{"Time", textutil.FormatElapsed(result.Elapsed)},
		{"Fits size limit", yesNo(result.UnderLimit(limit))},
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))

	if !result.UnderLimit(limit) {
		fmt.Fprintf(out, "Warning: output is %s over the %s limit; try a lower preset.\n",
			formatBytes(result.Overshoot(limit)), formatBytes(limit))
	}
}

// printSummary renders the aggregate outcome of a batch or multi-preset
// run.
func printSummary(out io.Writer, cfg *config.Config, summary compress.Summary) {
	limit := cfg.SizeLimitBytes()

	if len(summary.Results) > 0 {
		rows := make([][]string, 0, len(summary.Results))
		for _, result := range summary.Results {
			rows = append(rows, []string{
				filepath.Base(result.Output),
				result.Preset,
				formatBytes(result.InputBytes),
				formatBytes(result.OutputBytes),
				formatRatio(result.Ratio()),
				textutil.FormatElapsed(result.Elapsed),
				yesNo(result.UnderLimit(limit)),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Output", "Preset", "In", "Out", "Saved", "Time", "Fits"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
		))
	}

	for _, failure := range summary.Failures {
		fmt.Fprintf(out, "Failed: %s (%s): %s\n", failure.Input, failure.Preset, failure.Reason)
	}

	fmt.Fprintf(out, "\n%d of %d succeeded (%.0f%%) in %s",
		len(summary.Results), summary.Attempted(), summary.SuccessRate(),
		textutil.FormatElapsed(summary.Elapsed))
	if summary.Attempted() > 1 {
		fmt.Fprintf(out, ", %s per file", textutil.FormatElapsed(summary.AveragePerFile()))
	}
	fmt.Fprintln(out)

	if in, outBytes := summary.TotalInputBytes(), summary.TotalOutputBytes(); in > 0 {
		fmt.Fprintf(out, "Total: %s -> %s (saved %s)\n",
			formatBytes(in), formatBytes(outBytes), formatBytes(in-outBytes))
	}
}

// printEstimates renders the per-preset size estimate table for input.
func printEstimates(out io.Writer, cfg *config.Config, input string) error {
	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", input)
		}
		return err
	}

	limit := cfg.SizeLimitBytes()
	rows := make([][]string, 0, len(preset.All()))
	for _, p := range preset.All() {
		estimated := p.EstimateBytes(info.Size())
		rows = append(rows, []string{
			p.Name,
			formatBytes(estimated),
			formatRatio((1 - p.SizeRatio) * 100),
			yesNo(estimated <= limit),
		})
	}

	fmt.Fprintf(out, "Source size: %s, limit: %s\n", formatBytes(info.Size()), formatBytes(limit))
	fmt.Fprintln(out, renderTable(
		[]string{"Preset", "Estimated size", "Est. saved", "Fits"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft}))
	return nil
}

// parsePresetFlag resolves the --preset flag, falling back to the
// configured default when the flag is empty.
func parsePresetFlag(cfg *config.Config, value string) ([]preset.Preset, error) {
	if value == "" {
		value = cfg.Compression.DefaultPreset
	}
	return preset.ParseList(value)
}
