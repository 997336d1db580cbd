package deps_test

import (
	"testing"

	"squish/internal/deps"
)

func TestCheckBinariesReportsMissingCommand(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "FFmpeg", Command: "definitely-not-a-real-binary-squish"},
	})
	if len(statuses) != 1 {
		t.Fatalf("unexpected status count: %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected binary to be unavailable")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
}

func TestCheckBinariesReportsEmptyCommand(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{{Name: "FFmpeg"}})
	if statuses[0].Available {
		t.Fatal("expected unavailable status for empty command")
	}
	if statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}
}

func TestMissingRequiredIgnoresOptional(t *testing.T) {
	missing := deps.MissingRequired([]deps.Status{
		{Name: "FFmpeg", Available: false},
		{Name: "NVENC", Available: false, Optional: true},
		{Name: "FFprobe", Available: true},
	})
	if len(missing) != 1 || missing[0] != "FFmpeg" {
		t.Fatalf("unexpected missing list: %v", missing)
	}
}

const encoderListing = ` Encoders:
 V..... = Video
 A..... = Audio
 S..... = Subtitle
 .F.... = Frame-level multithreading
 ------
 V....D libx264              libx264 H.264 / AVC / MPEG-4 AVC (codec h264)
 V....D h264_nvenc           NVIDIA NVENC H.264 encoder (codec h264)
 V..... h264_vaapi           H.264/AVC (VAAPI) (codec h264)
 A....D aac                  AAC (Advanced Audio Coding)
`

func TestParseEncoderList(t *testing.T) {
	names := deps.ParseEncoderList(encoderListing)
	want := []string{"libx264", "h264_nvenc", "h264_vaapi", "aac"}
	if len(names) != len(want) {
		t.Fatalf("unexpected encoder names: %v", names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("unexpected encoder names: got %v want %v", names, want)
		}
	}
}

func TestParseEncoderListWithoutBody(t *testing.T) {
	if names := deps.ParseEncoderList("Encoders:\nV..... = Video\n"); len(names) != 0 {
		t.Fatalf("expected no names without separator, got %v", names)
	}
}

func TestHasEncoder(t *testing.T) {
	names := []string{"libx264", "h264_nvenc"}
	if !deps.HasEncoder(names, "H264_NVENC") {
		t.Fatal("expected case-insensitive match")
	}
	if deps.HasEncoder(names, "h264_videotoolbox") {
		t.Fatal("did not expect a match")
	}
}
