package config

import (
	"fmt"
	"strings"

	"squish/internal/preset"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCompression(); err != nil {
		return err
	}
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCompression() error {
	if !preset.Valid(c.Compression.DefaultPreset) {
		return fmt.Errorf("compression.default_preset: unknown preset %q (valid: %s)",
			c.Compression.DefaultPreset, strings.Join(preset.Names(), ", "))
	}
	if c.Compression.SizeLimitMB < 0 {
		return fmt.Errorf("compression.size_limit_mb must be positive, got %d", c.Compression.SizeLimitMB)
	}
	if c.Compression.MaxWidth < 0 || c.Compression.MaxHeight < 0 {
		return fmt.Errorf("compression.max_width/max_height must be positive, got %dx%d",
			c.Compression.MaxWidth, c.Compression.MaxHeight)
	}
	return nil
}

func (c *Config) validateFFmpeg() error {
	if c.FFmpeg.EncodeTimeout < 0 {
		return fmt.Errorf("ffmpeg.encode_timeout must be positive, got %d", c.FFmpeg.EncodeTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (valid: console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}
