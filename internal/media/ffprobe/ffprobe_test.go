package ffprobe_test

import (
	"math"
	"testing"

	"squish/internal/media/ffprobe"
)

const sampleProbe = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30000/1001"
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "sample_rate": "48000",
      "channels": 2
    }
  ],
  "format": {
    "filename": "clip.mp4",
    "nb_streams": 2,
    "duration": "93.458000",
    "size": "52428800",
    "bit_rate": "4487000",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2"
  }
}`

func TestDecodeSampleProbe(t *testing.T) {
	result, err := ffprobe.Decode([]byte(sampleProbe))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	video, ok := result.FirstVideoStream()
	if !ok {
		t.Fatal("expected a video stream")
	}
	if video.Width != 1920 || video.Height != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", video.Width, video.Height)
	}
	if video.CodecName != "h264" {
		t.Fatalf("unexpected codec: %q", video.CodecName)
	}
	if got := video.FrameRate(); math.Abs(got-29.97) > 0.01 {
		t.Fatalf("unexpected frame rate: %f", got)
	}
	if !result.HasAudio() {
		t.Fatal("expected audio stream")
	}
	if got := result.DurationSeconds(); math.Abs(got-93.458) > 0.001 {
		t.Fatalf("unexpected duration: %f", got)
	}
	if got := result.SizeBytes(); got != 52428800 {
		t.Fatalf("unexpected size: %d", got)
	}
	if got := result.BitRate(); got != 4487000 {
		t.Fatalf("unexpected bitrate: %d", got)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := ffprobe.Decode([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFrameRateEdgeCases(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"empty", "", 0},
		{"zero denominator", "30/0", 0},
		{"malformed", "abc/def", 0},
		{"plain number", "25", 25},
		{"negative", "-30/1", 0},
		{"fraction", "24000/1001", 23.976},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stream := ffprobe.Stream{RFrameRate: tc.raw}
			if got := stream.FrameRate(); math.Abs(got-tc.want) > 0.001 {
				t.Fatalf("FrameRate(%q) = %f, want %f", tc.raw, got, tc.want)
			}
		})
	}
}

func TestAccessorsTolerateMissingFormat(t *testing.T) {
	result, err := ffprobe.Decode([]byte(`{"streams":[],"format":{}}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if result.DurationSeconds() != 0 || result.SizeBytes() != 0 || result.BitRate() != 0 {
		t.Fatal("expected zero values for missing format fields")
	}
	if _, ok := result.FirstVideoStream(); ok {
		t.Fatal("did not expect a video stream")
	}
	if result.HasAudio() {
		t.Fatal("did not expect audio")
	}
}
