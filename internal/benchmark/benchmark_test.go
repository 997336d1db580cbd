package benchmark_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"squish/internal/benchmark"
	"squish/internal/compress"
	"squish/internal/config"
	"squish/internal/ffmpeg"
	"squish/internal/hwaccel"
	"squish/internal/logging"
	"squish/internal/media/ffprobe"
	"squish/internal/preset"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func mustPreset(t *testing.T, name string) preset.Preset {
	t.Helper()
	p, ok := preset.Lookup(name)
	if !ok {
		t.Fatalf("unknown preset %q", name)
	}
	return p
}

func TestLegsCoverPresetEncoderMatrix(t *testing.T) {
	legs := benchmark.Legs()
	if len(legs) != 6 {
		t.Fatalf("got %d legs, want 6", len(legs))
	}
	want := []string{"medium/cpu", "medium/gpu", "high/cpu", "high/gpu", "low/cpu", "low/gpu"}
	for i, leg := range legs {
		if leg.Name() != want[i] {
			t.Fatalf("leg %d = %q, want %q", i, leg.Name(), want[i])
		}
	}
}

func TestRunSkipsGPULegsWithoutHardware(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "sample.mp4")
	if err := os.WriteFile(input, make([]byte, 1000), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outDir := filepath.Join(dir, "results")

	defer hwaccel.SetListEncodersForTests(func(context.Context, string) ([]string, error) {
		return []string{"libx264"}, nil
	})()
	defer compress.SetProbeForTests(func(context.Context, string, string) (ffprobe.Result, error) {
		return ffprobe.Result{Format: ffprobe.Format{Duration: "10"}}, nil
	})()
	defer compress.SetRunForTests(func(_ context.Context, _ string, plan ffmpeg.Plan, _ ffmpeg.RunOptions) (ffmpeg.RunResult, error) {
		if err := os.WriteFile(plan.Output, make([]byte, 200), 0o644); err != nil {
			return ffmpeg.RunResult{}, err
		}
		return ffmpeg.RunResult{Elapsed: time.Second}, nil
	})()

	runner := benchmark.NewRunner(cfg, logging.NewNop(), nil)
	report, err := runner.Run(context.Background(), input, outDir)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(report.Legs) != 3 {
		t.Fatalf("got %d completed legs, want 3", len(report.Legs))
	}
	if len(report.Skipped) != 3 {
		t.Fatalf("got %d skipped legs, want 3", len(report.Skipped))
	}
	for _, skipped := range report.Skipped {
		if !skipped.Leg.UseGPU {
			t.Fatalf("skipped a CPU leg: %s", skipped.Leg.Name())
		}
		if skipped.Reason == "" {
			t.Fatal("skipped leg missing reason")
		}
	}
	wantOutputs := []string{"benchmark_medium_cpu.mp4", "benchmark_high_cpu.mp4", "benchmark_low_cpu.mp4"}
	for i, leg := range report.Legs {
		if got := filepath.Base(leg.Result.Output); got != wantOutputs[i] {
			t.Fatalf("leg %d output = %q, want %q", i, got, wantOutputs[i])
		}
	}
}

func TestRunRejectsMissingInput(t *testing.T) {
	cfg := testConfig(t)

	defer hwaccel.SetListEncodersForTests(func(context.Context, string) ([]string, error) {
		return nil, errors.New("no ffmpeg")
	})()

	runner := benchmark.NewRunner(cfg, logging.NewNop(), nil)
	_, err := runner.Run(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func legResult(t *testing.T, presetName string, gpu bool, elapsed time.Duration, inputBytes int64) benchmark.LegResult {
	t.Helper()
	return benchmark.LegResult{
		Leg: benchmark.Leg{Preset: mustPreset(t, presetName), UseGPU: gpu},
		Result: compress.Result{
			InputBytes:  inputBytes,
			OutputBytes: inputBytes / 4,
			Elapsed:     elapsed,
		},
	}
}

func TestReportBaselineAndSpeedLabels(t *testing.T) {
	report := benchmark.Report{
		Legs: []benchmark.LegResult{
			legResult(t, "medium", false, 10*time.Second, 100<<20),
			legResult(t, "medium", true, 4*time.Second, 100<<20),
			legResult(t, "high", false, 20*time.Second, 100<<20),
		},
	}

	baseline, ok := report.Baseline()
	if !ok {
		t.Fatal("Baseline() not found")
	}
	if baseline.Leg.Name() != "medium/cpu" {
		t.Fatalf("baseline = %q, want medium/cpu", baseline.Leg.Name())
	}

	if got := report.SpeedLabel(report.Legs[0]); got != "baseline" {
		t.Fatalf("SpeedLabel(baseline) = %q", got)
	}
	if got := report.SpeedLabel(report.Legs[1]); got != "2.5x faster" {
		t.Fatalf("SpeedLabel(gpu) = %q, want 2.5x faster", got)
	}
	if got := report.SpeedLabel(report.Legs[2]); got != "2.0x slower" {
		t.Fatalf("SpeedLabel(high/cpu) = %q, want 2.0x slower", got)
	}
}

func TestReportAnalyze(t *testing.T) {
	report := benchmark.Report{
		Legs: []benchmark.LegResult{
			legResult(t, "medium", false, 10*time.Second, 100<<20),
			legResult(t, "high", false, 20*time.Second, 100<<20),
			legResult(t, "medium", true, 2*time.Second, 100<<20),
			legResult(t, "high", true, 5*time.Second, 100<<20),
		},
	}

	analysis := report.Analyze()
	if analysis.FastestCPU == nil || analysis.FastestCPU.Leg.Name() != "medium/cpu" {
		t.Fatalf("FastestCPU = %+v", analysis.FastestCPU)
	}
	if analysis.FastestGPU == nil || analysis.FastestGPU.Leg.Name() != "medium/gpu" {
		t.Fatalf("FastestGPU = %+v", analysis.FastestGPU)
	}
	if analysis.GPUSpeedup != 5 {
		t.Fatalf("GPUSpeedup = %v, want 5", analysis.GPUSpeedup)
	}
	// medium/gpu: score 2 over 2s = 1.0/s beats every other leg.
	if analysis.BestValue == nil || analysis.BestValue.Leg.Name() != "medium/gpu" {
		t.Fatalf("BestValue = %+v", analysis.BestValue)
	}
}

func TestLegEfficiency(t *testing.T) {
	// 100 MiB input compresses to 25 MiB in 10s: 2.5 MB/s of output.
	leg := legResult(t, "medium", false, 10*time.Second, 100<<20)
	if got := leg.Efficiency(); got != 2.5 {
		t.Fatalf("Efficiency() = %v, want 2.5", got)
	}

	leg.Result.Elapsed = 0
	if got := leg.Efficiency(); got != 0 {
		t.Fatalf("Efficiency() with zero elapsed = %v, want 0", got)
	}
}
