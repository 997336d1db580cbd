package benchmark

import (
	"fmt"
	"time"

	"squish/internal/compress"
)

// LegResult pairs a matrix leg with its compression outcome.
type LegResult struct {
	Leg    Leg
	Result compress.Result
}

// Efficiency reports output megabytes produced per second of encode time.
func (l LegResult) Efficiency() float64 {
	seconds := l.Result.Elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(l.Result.OutputBytes) / (1024 * 1024) / seconds
}

// SkippedLeg records a matrix cell that did not run and why.
type SkippedLeg struct {
	Leg    Leg
	Reason string
}

// Report holds the outcome of a full benchmark run.
type Report struct {
	Input      string
	InputBytes int64
	Legs       []LegResult
	Skipped    []SkippedLeg
	Elapsed    time.Duration
}

// Baseline returns the CPU leg of the middle preset, the reference point
// for speed comparisons.
func (r Report) Baseline() (LegResult, bool) {
	for _, leg := range r.Legs {
		if !leg.Leg.UseGPU && leg.Leg.Preset.Name == "medium" {
			return leg, true
		}
	}
	return LegResult{}, false
}

// SpeedLabel describes a leg's elapsed time relative to the baseline,
// e.g. "2.1x faster" or "1.3x slower".
func (r Report) SpeedLabel(leg LegResult) string {
	baseline, ok := r.Baseline()
	if !ok || leg.Result.Elapsed <= 0 {
		return "n/a"
	}
	if leg.Leg == baseline.Leg {
		return "baseline"
	}
	factor := baseline.Result.Elapsed.Seconds() / leg.Result.Elapsed.Seconds()
	if factor >= 1 {
		return fmt.Sprintf("%.1fx faster", factor)
	}
	return fmt.Sprintf("%.1fx slower", 1/factor)
}

// Analysis summarizes the interesting rows of a report.
type Analysis struct {
	FastestCPU *LegResult
	FastestGPU *LegResult

	// GPUSpeedup compares the fastest GPU leg against the fastest CPU leg
	// at the same preset when both exist; zero otherwise.
	GPUSpeedup float64

	// BestValue is the leg with the highest quality score per encode
	// second.
	BestValue *LegResult
}

// Analyze derives the headline numbers from the completed legs.
func (r Report) Analyze() Analysis {
	var analysis Analysis

	for i := range r.Legs {
		leg := &r.Legs[i]
		if leg.Result.Elapsed <= 0 {
			continue
		}
		if leg.Leg.UseGPU {
			if analysis.FastestGPU == nil || leg.Result.Elapsed < analysis.FastestGPU.Result.Elapsed {
				analysis.FastestGPU = leg
			}
		} else {
			if analysis.FastestCPU == nil || leg.Result.Elapsed < analysis.FastestCPU.Result.Elapsed {
				analysis.FastestCPU = leg
			}
		}

		value := float64(leg.Leg.Preset.QualityScore()) / leg.Result.Elapsed.Seconds()
		if analysis.BestValue == nil {
			analysis.BestValue = leg
			continue
		}
		best := float64(analysis.BestValue.Leg.Preset.QualityScore()) / analysis.BestValue.Result.Elapsed.Seconds()
		if value > best {
			analysis.BestValue = leg
		}
	}

	if analysis.FastestGPU != nil {
		if cpu, ok := r.cpuLegFor(analysis.FastestGPU.Leg.Preset.Name); ok && analysis.FastestGPU.Result.Elapsed > 0 {
			analysis.GPUSpeedup = cpu.Result.Elapsed.Seconds() / analysis.FastestGPU.Result.Elapsed.Seconds()
		}
	}
	return analysis
}

func (r Report) cpuLegFor(presetName string) (LegResult, bool) {
	for _, leg := range r.Legs {
		if !leg.Leg.UseGPU && leg.Leg.Preset.Name == presetName {
			return leg, true
		}
	}
	return LegResult{}, false
}
