// Package benchmark measures encoder throughput by compressing one source
// file across a matrix of quality presets and CPU/GPU encoders, then
// comparing the legs against a CPU baseline.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"squish/internal/compress"
	"squish/internal/config"
	"squish/internal/hwaccel"
	"squish/internal/logging"
	"squish/internal/preset"
)

// DefaultOutputDir is where benchmark artifacts land unless overridden.
const DefaultOutputDir = "benchmark_results"

// benchmarkPresets is the quality spread exercised by the matrix. The
// middle preset doubles as the comparison baseline.
var benchmarkPresets = []string{"medium", "high", "low"}

// Leg is one cell of the benchmark matrix.
type Leg struct {
	Preset preset.Preset
	UseGPU bool
}

// Label returns the encoder-side tag for the leg.
func (l Leg) Label() string {
	if l.UseGPU {
		return "gpu"
	}
	return "cpu"
}

// Name returns a stable identifier like "medium/cpu".
func (l Leg) Name() string {
	return l.Preset.Name + "/" + l.Label()
}

// Legs returns the full matrix in execution order.
func Legs() []Leg {
	legs := make([]Leg, 0, len(benchmarkPresets)*2)
	for _, name := range benchmarkPresets {
		p, ok := preset.Lookup(name)
		if !ok {
			continue
		}
		legs = append(legs, Leg{Preset: p, UseGPU: false}, Leg{Preset: p, UseGPU: true})
	}
	return legs
}

// Runner executes the benchmark matrix.
type Runner struct {
	cfg        *config.Config
	logger     *slog.Logger
	compressor *compress.Compressor
}

// NewRunner returns a Runner. recorder may be nil to keep benchmark runs
// out of history.
func NewRunner(cfg *config.Config, logger *slog.Logger, recorder compress.Recorder) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "benchmark"),
		compressor: compress.New(cfg, logger, recorder),
	}
}

// Run compresses input once per leg into outputDir and returns the
// measured report. GPU legs are skipped, not failed, when no hardware
// encoder is usable on this machine.
func (r *Runner) Run(ctx context.Context, input, outputDir string) (Report, error) {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Report{}, err
	}
	info, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("input file not found: %s", input)
		}
		return Report{}, fmt.Errorf("stat input: %w", err)
	}

	gpuReason := ""
	detector := hwaccel.NewDetector(
		r.cfg.FFmpegBinary(),
		time.Duration(r.cfg.FFmpeg.HardwareProbes)*time.Second,
		r.logger,
	)
	if _, err := detector.Detect(ctx); err != nil {
		gpuReason = err.Error()
		r.logger.Warn("skipping GPU legs", logging.Error(err))
	}

	report := Report{Input: input, InputBytes: info.Size()}
	started := time.Now()

	for _, leg := range Legs() {
		if leg.UseGPU && gpuReason != "" {
			report.Skipped = append(report.Skipped, SkippedLeg{Leg: leg, Reason: gpuReason})
			continue
		}
		if err := ctx.Err(); err != nil {
			report.Skipped = append(report.Skipped, SkippedLeg{Leg: leg, Reason: err.Error()})
			continue
		}

		r.logger.Info("benchmark leg",
			logging.String("preset", leg.Preset.Name),
			logging.String("encoder", leg.Label()))

		result, err := r.compressor.Compress(ctx, compress.Request{
			Input:  input,
			Output: legOutput(outputDir, leg),
			Preset: leg.Preset,
			UseGPU: leg.UseGPU,
			Kind:   "benchmark",
		})
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedLeg{Leg: leg, Reason: err.Error()})
			continue
		}
		report.Legs = append(report.Legs, LegResult{Leg: leg, Result: result})
	}

	report.Elapsed = time.Since(started)
	return report, nil
}

func legOutput(dir string, leg Leg) string {
	return filepath.Join(dir, fmt.Sprintf("benchmark_%s_%s.mp4", leg.Preset.Name, leg.Label()))
}
