package ffmpeg

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// ProgressUpdate carries one sample from ffmpeg's -progress stream.
type ProgressUpdate struct {
	Processed time.Duration
	Speed     float64
	Done      bool
}

// ScanProgress reads the key=value stream `-progress pipe:1` emits and
// invokes fn on every sample. ffmpeg flushes a block of keys roughly twice a
// second; out_time_us carries the processed timestamp and progress=end marks
// completion.
func ScanProgress(r io.Reader, fn func(ProgressUpdate)) {
	if fn == nil {
		fn = func(ProgressUpdate) {}
	}
	var current ProgressUpdate
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "out_time_us", "out_time_ms":
			// Both keys are microseconds; out_time_ms is a historical
			// misnomer in ffmpeg itself.
			if us, err := strconv.ParseInt(value, 10, 64); err == nil && us >= 0 {
				current.Processed = time.Duration(us) * time.Microsecond
			}
		case "speed":
			if parsed, err := strconv.ParseFloat(strings.TrimSuffix(value, "x"), 64); err == nil && parsed >= 0 {
				current.Speed = parsed
			}
		case "progress":
			current.Done = value == "end"
			fn(current)
		}
	}
}
