package compress

import (
	"context"
	"os"
	"time"

	"squish/internal/logging"
	"squish/internal/preset"
)

// MultiPreset compresses one input once per preset, deriving an output
// name from each preset. Individual failures do not stop the remaining
// presets.
func (c *Compressor) MultiPreset(ctx context.Context, input string, presets []preset.Preset, useGPU, showProgress bool) Summary {
	started := time.Now()
	var summary Summary

	for _, p := range presets {
		if err := ctx.Err(); err != nil {
			summary.Failures = append(summary.Failures, Failure{Input: input, Preset: p.Name, Reason: err.Error()})
			continue
		}
		result, err := c.Compress(ctx, Request{
			Input:        input,
			Output:       PresetOutput(input, p.Name),
			Preset:       p,
			UseGPU:       useGPU,
			Kind:         "compress",
			ShowProgress: showProgress,
		})
		if err != nil {
			summary.Failures = append(summary.Failures, Failure{Input: input, Preset: p.Name, Reason: err.Error()})
			continue
		}
		summary.Results = append(summary.Results, result)
	}

	summary.Elapsed = time.Since(started)
	return summary
}

// Batch compresses every input into outputDir. With a single preset the
// outputs keep the _compressed naming; with several, each output carries
// its preset name. Missing inputs are reported as failures without
// aborting the rest of the batch.
func (c *Compressor) Batch(ctx context.Context, inputs []string, outputDir string, presets []preset.Preset, useGPU, showProgress bool) (Summary, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, err
	}

	started := time.Now()
	var summary Summary

	for index, input := range inputs {
		c.logger.Info("batch progress",
			logging.String("component", "compress"),
			logging.Int("file", index+1),
			logging.Int("total", len(inputs)),
			logging.String("input", input))

		if _, err := os.Stat(input); err != nil {
			for _, p := range presets {
				summary.Failures = append(summary.Failures, Failure{Input: input, Preset: p.Name, Reason: "file not found"})
			}
			continue
		}

		for _, p := range presets {
			if err := ctx.Err(); err != nil {
				summary.Failures = append(summary.Failures, Failure{Input: input, Preset: p.Name, Reason: err.Error()})
				continue
			}
			output := BatchOutput(outputDir, input)
			if len(presets) > 1 {
				output = BatchPresetOutput(outputDir, input, p.Name)
			}
			result, err := c.Compress(ctx, Request{
				Input:        input,
				Output:       output,
				Preset:       p,
				UseGPU:       useGPU,
				Kind:         "batch",
				ShowProgress: showProgress,
			})
			if err != nil {
				summary.Failures = append(summary.Failures, Failure{Input: input, Preset: p.Name, Reason: err.Error()})
				continue
			}
			summary.Results = append(summary.Results, result)
		}
	}

	summary.Elapsed = time.Since(started)
	return summary, nil
}
