package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"squish/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "squish")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Paths.LogDir != filepath.Join(wantState, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" || cfg.FFmpeg.ProbeBinary != "ffprobe" {
		t.Fatalf("unexpected ffmpeg binaries: %q %q", cfg.FFmpeg.Binary, cfg.FFmpeg.ProbeBinary)
	}
	if cfg.Compression.DefaultPreset != "medium" {
		t.Fatalf("unexpected default preset: %q", cfg.Compression.DefaultPreset)
	}
	if cfg.Compression.SizeLimitMB != 25 {
		t.Fatalf("unexpected size limit: %d", cfg.Compression.SizeLimitMB)
	}
	if got := cfg.SizeLimitBytes(); got != 25*1024*1024 {
		t.Fatalf("unexpected size limit bytes: %d", got)
	}
	if cfg.Compression.MaxWidth != 1280 || cfg.Compression.MaxHeight != 720 {
		t.Fatalf("unexpected scaling bounds: %dx%d", cfg.Compression.MaxWidth, cfg.Compression.MaxHeight)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadReadsTOMLOverrides(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "squish.toml")
	contents := strings.Join([]string{
		"[compression]",
		`default_preset = "HIGH"`,
		"size_limit_mb = 50",
		"",
		"[ffmpeg]",
		`binary = "/opt/ffmpeg/bin/ffmpeg"`,
		"",
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Compression.DefaultPreset != "high" {
		t.Fatalf("expected preset name lowercased, got %q", cfg.Compression.DefaultPreset)
	}
	if cfg.Compression.SizeLimitMB != 50 {
		t.Fatalf("unexpected size limit: %d", cfg.Compression.SizeLimitMB)
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.FFmpeg.Binary)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging overrides: %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownPreset(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "squish.toml")
	if err := os.WriteFile(path, []byte("[compression]\ndefault_preset = \"ultra\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "squish.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, ".config", "squish", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Compression.DefaultPreset != config.Default().Compression.DefaultPreset {
		t.Fatalf("sample should carry defaults, got preset %q", cfg.Compression.DefaultPreset)
	}
}
