package compress

import (
	"context"

	"squish/internal/ffmpeg"
	"squish/internal/media/ffprobe"
)

// SetProbeForTests replaces the media prober and returns a restore func.
func SetProbeForTests(fn func(context.Context, string, string) (ffprobe.Result, error)) func() {
	previous := probeMedia
	probeMedia = fn
	return func() {
		probeMedia = previous
	}
}

// SetRunForTests replaces the encoder runner and returns a restore func.
func SetRunForTests(fn func(context.Context, string, ffmpeg.Plan, ffmpeg.RunOptions) (ffmpeg.RunResult, error)) func() {
	previous := runEncode
	runEncode = fn
	return func() {
		runEncode = previous
	}
}
