package compress

import "time"

// Result describes a completed compression run.
type Result struct {
	JobID       string
	Input       string
	Output      string
	Preset      string
	Encoder     string
	InputBytes  int64
	OutputBytes int64
	Elapsed     time.Duration
	Scaled      bool
}

// Ratio reports how much smaller the output is as a percentage of the
// input size. A larger output yields a negative value.
func (r Result) Ratio() float64 {
	if r.InputBytes <= 0 {
		return 0
	}
	return (1 - float64(r.OutputBytes)/float64(r.InputBytes)) * 100
}

// SpaceSaved reports the byte delta between input and output.
func (r Result) SpaceSaved() int64 {
	return r.InputBytes - r.OutputBytes
}

// UnderLimit reports whether the output fits within limitBytes.
func (r Result) UnderLimit(limitBytes int64) bool {
	return r.OutputBytes <= limitBytes
}

// Overshoot reports how many bytes past limitBytes the output landed, or
// zero when the output fits.
func (r Result) Overshoot(limitBytes int64) int64 {
	if r.OutputBytes <= limitBytes {
		return 0
	}
	return r.OutputBytes - limitBytes
}

// Failure records a file that could not be compressed during a batch or
// multi-preset run.
type Failure struct {
	Input  string
	Preset string
	Reason string
}

// Summary aggregates the outcome of a batch or multi-preset run.
type Summary struct {
	Results  []Result
	Failures []Failure
	Elapsed  time.Duration
}

// Attempted reports how many encodes were tried.
func (s Summary) Attempted() int {
	return len(s.Results) + len(s.Failures)
}

// SuccessRate reports the fraction of attempted encodes that succeeded,
// as a percentage.
func (s Summary) SuccessRate() float64 {
	total := s.Attempted()
	if total == 0 {
		return 0
	}
	return float64(len(s.Results)) / float64(total) * 100
}

// AveragePerFile reports the mean wall-clock time per attempted encode.
func (s Summary) AveragePerFile() time.Duration {
	total := s.Attempted()
	if total == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(total)
}

// TotalInputBytes sums the source sizes of the successful runs.
func (s Summary) TotalInputBytes() int64 {
	var total int64
	for _, res := range s.Results {
		total += res.InputBytes
	}
	return total
}

// TotalOutputBytes sums the output sizes of the successful runs.
func (s Summary) TotalOutputBytes() int64 {
	var total int64
	for _, res := range s.Results {
		total += res.OutputBytes
	}
	return total
}
