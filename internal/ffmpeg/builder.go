package ffmpeg

import (
	"fmt"
	"strings"

	"squish/internal/preset"
)

// Plan describes a single ffmpeg invocation.
type Plan struct {
	Input   string
	Output  string
	Encoder string
	Quality preset.Preset

	// Scale is the -vf value, empty when the source already fits.
	Scale        string
	AudioBitrate string

	// Progress requests machine-readable progress on stdout.
	Progress bool
}

// BuildArgs constructs the argument list for the plan. The first element is
// not the binary name; callers pass the result to exec.Command directly.
func BuildArgs(p Plan) []string {
	args := []string{"-hide_banner", "-i", p.Input}

	args = append(args, videoArgs(p.Encoder, p.Quality)...)
	args = append(args, "-maxrate", p.Quality.MaxRate, "-bufsize", p.Quality.BufSize)

	if p.Scale != "" {
		args = append(args, "-vf", p.Scale)
	}

	audioBitrate := p.AudioBitrate
	if audioBitrate == "" {
		audioBitrate = "128k"
	}
	args = append(args, "-c:a", "aac", "-b:a", audioBitrate)
	args = append(args, "-movflags", "+faststart")

	if p.Progress {
		args = append(args, "-progress", "pipe:1", "-nostats")
	}

	args = append(args, "-y", p.Output)
	return args
}

// videoArgs maps the preset's CRF target onto the encoder's quality flags.
// Hardware encoders have no CRF mode; each family exposes its own knob.
func videoArgs(encoder string, q preset.Preset) []string {
	switch {
	case strings.Contains(encoder, "nvenc"):
		return []string{"-c:v", encoder, "-preset", "p4", "-cq", fmt.Sprint(q.CRF)}
	case strings.Contains(encoder, "vaapi"):
		return []string{"-c:v", encoder, "-qp", fmt.Sprint(q.CRF)}
	case strings.Contains(encoder, "videotoolbox"):
		// VideoToolbox quality runs on a different scale; 0.8 tracks the
		// CRF targets closely enough in practice.
		return []string{"-c:v", encoder, "-q:v", fmt.Sprint(int(float64(q.CRF) * 0.8))}
	default:
		return []string{"-c:v", "libx264", "-preset", q.Speed, "-crf", fmt.Sprint(q.CRF)}
	}
}

// ScaleFilter returns the -vf expression that shrinks oversized sources to
// fit within maxWidth x maxHeight while preserving aspect ratio, or "" when
// the source already fits (or its dimensions are unknown).
func ScaleFilter(width, height, maxWidth, maxHeight int) string {
	if width <= 0 || height <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return ""
	}
	if width <= maxWidth && height <= maxHeight {
		return ""
	}
	return fmt.Sprintf("scale='min(%d,iw)':'min(%d,ih)':force_original_aspect_ratio=decrease", maxWidth, maxHeight)
}
