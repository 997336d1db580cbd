package ffmpeg_test

import (
	"strings"
	"testing"

	"squish/internal/ffmpeg"
	"squish/internal/preset"
)

func mustPreset(t *testing.T, name string) preset.Preset {
	t.Helper()
	p, ok := preset.Lookup(name)
	if !ok {
		t.Fatalf("unknown preset %q", name)
	}
	return p
}

func TestBuildArgsCPU(t *testing.T) {
	plan := ffmpeg.Plan{
		Input:        "in.mov",
		Output:       "out.mp4",
		Encoder:      "libx264",
		Quality:      mustPreset(t, "medium"),
		AudioBitrate: "128k",
	}
	got := strings.Join(ffmpeg.BuildArgs(plan), " ")
	want := "-hide_banner -i in.mov -c:v libx264 -preset fast -crf 28 -maxrate 500k -bufsize 1000k -c:a aac -b:a 128k -movflags +faststart -y out.mp4"
	if got != want {
		t.Fatalf("unexpected args:\n got %s\nwant %s", got, want)
	}
}

func TestBuildArgsNVENC(t *testing.T) {
	plan := ffmpeg.Plan{
		Input:   "in.mp4",
		Output:  "out.mp4",
		Encoder: "h264_nvenc",
		Quality: mustPreset(t, "high"),
	}
	got := strings.Join(ffmpeg.BuildArgs(plan), " ")
	for _, fragment := range []string{"-c:v h264_nvenc", "-preset p4", "-cq 23", "-maxrate 800k", "-bufsize 1600k"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("args missing %q: %s", fragment, got)
		}
	}
	if strings.Contains(got, "libx264") || strings.Contains(got, "-crf") {
		t.Fatalf("nvenc plan should not carry CPU flags: %s", got)
	}
}

func TestBuildArgsVAAPI(t *testing.T) {
	plan := ffmpeg.Plan{Input: "a", Output: "b", Encoder: "h264_vaapi", Quality: mustPreset(t, "low")}
	got := strings.Join(ffmpeg.BuildArgs(plan), " ")
	if !strings.Contains(got, "-c:v h264_vaapi -qp 32") {
		t.Fatalf("unexpected vaapi args: %s", got)
	}
}

func TestBuildArgsVideoToolboxScalesQuality(t *testing.T) {
	plan := ffmpeg.Plan{Input: "a", Output: "b", Encoder: "h264_videotoolbox", Quality: mustPreset(t, "medium")}
	got := strings.Join(ffmpeg.BuildArgs(plan), " ")
	// CRF 28 * 0.8 = 22.4, truncated to 22.
	if !strings.Contains(got, "-c:v h264_videotoolbox -q:v 22") {
		t.Fatalf("unexpected videotoolbox args: %s", got)
	}
}

func TestBuildArgsIncludesScaleAndProgress(t *testing.T) {
	plan := ffmpeg.Plan{
		Input:    "in.mp4",
		Output:   "out.mp4",
		Encoder:  "libx264",
		Quality:  mustPreset(t, "potato"),
		Scale:    ffmpeg.ScaleFilter(1920, 1080, 1280, 720),
		Progress: true,
	}
	got := strings.Join(ffmpeg.BuildArgs(plan), " ")
	if !strings.Contains(got, "-vf scale='min(1280,iw)':'min(720,ih)':force_original_aspect_ratio=decrease") {
		t.Fatalf("scale filter missing: %s", got)
	}
	if !strings.Contains(got, "-progress pipe:1 -nostats") {
		t.Fatalf("progress flags missing: %s", got)
	}
	if !strings.HasSuffix(got, "-y out.mp4") {
		t.Fatalf("output should be last: %s", got)
	}
}

func TestBuildArgsDefaultsAudioBitrate(t *testing.T) {
	plan := ffmpeg.Plan{Input: "a", Output: "b", Encoder: "libx264", Quality: mustPreset(t, "medium")}
	got := strings.Join(ffmpeg.BuildArgs(plan), " ")
	if !strings.Contains(got, "-c:a aac -b:a 128k") {
		t.Fatalf("audio defaults missing: %s", got)
	}
}

func TestScaleFilter(t *testing.T) {
	cases := []struct {
		name          string
		w, h          int
		wantFiltering bool
	}{
		{"already fits", 1280, 720, false},
		{"smaller", 640, 480, false},
		{"too wide", 1920, 700, true},
		{"too tall", 1000, 1080, true},
		{"unknown dimensions", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ffmpeg.ScaleFilter(tc.w, tc.h, 1280, 720)
			if (got != "") != tc.wantFiltering {
				t.Fatalf("ScaleFilter(%d, %d) = %q", tc.w, tc.h, got)
			}
		})
	}
}
