package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"squish/internal/logging"
)

func TestConsoleHandlerIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "compressor").Info("encode complete",
		logging.String("preset", "medium"),
		logging.Int("exit_code", 0),
	)

	out := buf.String()
	if !strings.Contains(out, "[compressor]") {
		t.Fatalf("expected component tag, got %q", out)
	}
	if !strings.Contains(out, "encode complete") {
		t.Fatalf("expected message, got %q", out)
	}
	if !strings.Contains(out, "preset=medium") || !strings.Contains(out, "exit_code=0") {
		t.Fatalf("expected attrs, got %q", out)
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info line should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONHandlerEmitsLowercaseLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Error("ffmpeg failed", logging.String("input", "clip.mp4"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["level"] != "error" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
	if record["msg"] != "ffmpeg failed" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["input"] != "clip.mp4" {
		t.Fatalf("unexpected input attr: %v", record["input"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
