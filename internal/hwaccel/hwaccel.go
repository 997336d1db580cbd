// Package hwaccel detects usable hardware H.264 encoders.
//
// Detection is two-phase: the candidate must appear in `ffmpeg -encoders`,
// and a one-frame synthetic encode must succeed. Drivers routinely advertise
// encoders that fail at runtime (no device node, missing libraries), so the
// listing alone is not trusted.
package hwaccel

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"squish/internal/deps"
	"squish/internal/logging"
)

// ErrNoEncoder indicates that no hardware encoder passed detection.
var ErrNoEncoder = errors.New("no usable hardware encoder found")

// CPUEncoder is the software fallback used when hardware is unavailable.
const CPUEncoder = "libx264"

// listEncoders and smokeTest are package-level so tests can override them.
var (
	listEncoders = deps.ListEncoders
	smokeTest    = runSmokeTest
)

// Candidates returns the hardware encoder names worth testing on the current
// platform, in preference order.
func Candidates() []string {
	return CandidatesFor(runtime.GOOS)
}

// CandidatesFor returns the candidate list for a specific GOOS value.
func CandidatesFor(goos string) []string {
	switch goos {
	case "windows":
		return []string{"h264_nvenc"}
	case "darwin":
		return []string{"h264_videotoolbox"}
	default:
		return []string{"h264_nvenc", "h264_vaapi"}
	}
}

// Detector finds a working hardware encoder for a given ffmpeg binary.
type Detector struct {
	binary       string
	probeTimeout time.Duration
	logger       *slog.Logger
}

// NewDetector builds a Detector for the given ffmpeg binary.
func NewDetector(binary string, probeTimeout time.Duration, logger *slog.Logger) *Detector {
	return &Detector{
		binary:       binary,
		probeTimeout: probeTimeout,
		logger:       logging.NewComponentLogger(logger, "hwaccel"),
	}
}

// Detect returns the first usable hardware encoder, or ErrNoEncoder.
func (d *Detector) Detect(ctx context.Context) (string, error) {
	encoders, err := listEncoders(ctx, d.binary)
	if err != nil {
		return "", err
	}
	return d.pick(ctx, Candidates(), encoders)
}

func (d *Detector) pick(ctx context.Context, candidates, available []string) (string, error) {
	for _, candidate := range candidates {
		if !deps.HasEncoder(available, candidate) {
			d.logger.Debug("encoder not advertised by ffmpeg", logging.String("encoder", candidate))
			continue
		}
		if err := smokeTest(ctx, d.binary, candidate, d.probeTimeout); err != nil {
			d.logger.Debug("encoder smoke test failed",
				logging.String("encoder", candidate),
				logging.Error(err),
			)
			continue
		}
		d.logger.Debug("hardware encoder selected", logging.String("encoder", candidate))
		return candidate, nil
	}
	return "", ErrNoEncoder
}

// runSmokeTest encodes a single synthetic frame with the candidate encoder.
// 256x256 is the floor: NVENC rejects smaller frames.
func runSmokeTest(ctx context.Context, binary, encoder string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, binary,
		"-hide_banner", "-loglevel", "error",
		"-f", "lavfi", "-i", "testsrc=duration=0.1:size=256x256:rate=1",
		"-c:v", encoder, "-frames:v", "1", "-f", "null", "-",
	)
	return cmd.Run()
}
