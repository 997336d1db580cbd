package compress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"squish/internal/config"
	"squish/internal/ffmpeg"
	"squish/internal/history"
	"squish/internal/hwaccel"
	"squish/internal/logging"
	"squish/internal/media/ffprobe"
	"squish/internal/preset"
)

// Test hooks. Production code never reassigns these.
var (
	probeMedia = ffprobe.Inspect
	runEncode  = ffmpeg.Run
)

// Recorder persists run outcomes. *history.Store satisfies it; a nil
// Recorder disables persistence.
type Recorder interface {
	Record(ctx context.Context, run history.Run) error
}

// Request describes a single compression job.
type Request struct {
	Input  string
	Output string
	Preset preset.Preset

	// UseGPU asks for hardware encoder detection. Detection failure falls
	// back to the CPU encoder with a warning rather than aborting.
	UseGPU bool

	// Kind tags the run in history ("compress", "batch", "benchmark").
	Kind string

	ShowProgress bool
}

// Compressor runs compression jobs against a fixed configuration.
type Compressor struct {
	cfg      *config.Config
	logger   *slog.Logger
	recorder Recorder

	detectOnce sync.Once
	gpuEncoder string
	gpuErr     error
}

// New returns a Compressor. recorder may be nil when history persistence
// is not wanted (benchmarks record their own runs).
func New(cfg *config.Config, logger *slog.Logger, recorder Recorder) *Compressor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Compressor{cfg: cfg, logger: logger, recorder: recorder}
}

// ResolveEncoder returns the encoder a job with the given GPU preference
// would use. Hardware detection runs at most once per Compressor and is
// cached for subsequent jobs.
func (c *Compressor) ResolveEncoder(ctx context.Context, useGPU bool) string {
	if !useGPU {
		return hwaccel.CPUEncoder
	}
	c.detectOnce.Do(func() {
		detector := hwaccel.NewDetector(
			c.cfg.FFmpegBinary(),
			time.Duration(c.cfg.FFmpeg.HardwareProbes)*time.Second,
			c.logger,
		)
		c.gpuEncoder, c.gpuErr = detector.Detect(ctx)
	})
	if c.gpuErr != nil {
		c.logger.Warn("hardware encoder unavailable, using CPU",
			logging.String("component", "compress"),
			logging.Error(c.gpuErr))
		return hwaccel.CPUEncoder
	}
	return c.gpuEncoder
}

// Compress runs one job end to end and returns the measured result. The
// run is recorded in history whether it succeeds or fails.
func (c *Compressor) Compress(ctx context.Context, req Request) (Result, error) {
	jobID := uuid.NewString()
	ctx = logging.WithJobID(ctx, jobID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(c.logger, "compress"))

	if req.Output == "" {
		req.Output = DefaultOutput(req.Input)
	}
	if req.Kind == "" {
		req.Kind = "compress"
	}

	info, err := os.Stat(req.Input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("input file not found: %s", req.Input)
		}
		return Result{}, fmt.Errorf("stat input: %w", err)
	}
	inputBytes := info.Size()

	// Probe failures are not fatal: the encode still works, we just lose
	// the scale decision and the progress bar.
	var sourceDuration time.Duration
	scale := ""
	probe, probeErr := probeMedia(ctx, c.cfg.FFprobeBinary(), req.Input)
	if probeErr != nil {
		logger.Warn("ffprobe failed, continuing without media info", logging.Error(probeErr))
	} else {
		sourceDuration = time.Duration(probe.DurationSeconds() * float64(time.Second))
		if video, ok := probe.FirstVideoStream(); ok {
			scale = ffmpeg.ScaleFilter(video.Width, video.Height,
				c.cfg.Compression.MaxWidth, c.cfg.Compression.MaxHeight)
		}
	}

	encoder := c.ResolveEncoder(ctx, req.UseGPU)

	logger.Info("compressing",
		logging.String("input", req.Input),
		logging.String("output", req.Output),
		logging.String("preset", req.Preset.Name),
		logging.String("encoder", encoder),
		logging.Bool("gpu", req.UseGPU))

	plan := ffmpeg.Plan{
		Input:        req.Input,
		Output:       req.Output,
		Encoder:      encoder,
		Quality:      req.Preset,
		Scale:        scale,
		AudioBitrate: c.cfg.Compression.AudioBitrate,
	}

	runRes, err := runEncode(ctx, c.cfg.FFmpegBinary(), plan, ffmpeg.RunOptions{
		Duration:     sourceDuration,
		ShowProgress: req.ShowProgress,
		Timeout:      time.Duration(c.cfg.FFmpeg.EncodeTimeout) * time.Second,
		Logger:       c.logger,
	})
	if err != nil {
		c.record(ctx, jobID, req, encoder, inputBytes, 0, runRes.Elapsed, false, err.Error())
		return Result{}, err
	}

	outInfo, err := os.Stat(req.Output)
	if err != nil {
		err = fmt.Errorf("output file was not created: %s", req.Output)
		c.record(ctx, jobID, req, encoder, inputBytes, 0, runRes.Elapsed, false, err.Error())
		return Result{}, err
	}

	result := Result{
		JobID:       jobID,
		Input:       req.Input,
		Output:      req.Output,
		Preset:      req.Preset.Name,
		Encoder:     encoder,
		InputBytes:  inputBytes,
		OutputBytes: outInfo.Size(),
		Elapsed:     runRes.Elapsed,
		Scaled:      scale != "",
	}

	logger.Info("compression finished",
		logging.Int64("input_bytes", result.InputBytes),
		logging.Int64("output_bytes", result.OutputBytes),
		logging.Float64("ratio_percent", result.Ratio()),
		logging.Duration("elapsed", result.Elapsed))

	if !result.UnderLimit(c.cfg.SizeLimitBytes()) {
		logger.Warn("output exceeds size limit",
			logging.Int64("over_by_bytes", result.Overshoot(c.cfg.SizeLimitBytes())))
	}

	c.record(ctx, jobID, req, encoder, inputBytes, result.OutputBytes, result.Elapsed, true, "")
	return result, nil
}

func (c *Compressor) record(ctx context.Context, jobID string, req Request, encoder string, inBytes, outBytes int64, elapsed time.Duration, success bool, detail string) {
	if c.recorder == nil {
		return
	}
	run := history.Run{
		ID:          jobID,
		Kind:        req.Kind,
		Input:       req.Input,
		Output:      req.Output,
		Preset:      req.Preset.Name,
		Encoder:     encoder,
		InputBytes:  inBytes,
		OutputBytes: outBytes,
		Elapsed:     elapsed,
		Success:     success,
		Detail:      detail,
	}
	if err := c.recorder.Record(ctx, run); err != nil {
		c.logger.Warn("failed to record run history",
			logging.String("component", "compress"),
			logging.Error(err))
	}
}
