package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFFmpeg()
	c.normalizeCompression()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeFFmpeg() {
	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = defaultFFmpegBinary
	}
	c.FFmpeg.ProbeBinary = strings.TrimSpace(c.FFmpeg.ProbeBinary)
	if c.FFmpeg.ProbeBinary == "" {
		c.FFmpeg.ProbeBinary = defaultFFprobeBinary
	}
	if c.FFmpeg.EncodeTimeout <= 0 {
		c.FFmpeg.EncodeTimeout = defaultEncodeTimeout
	}
	if c.FFmpeg.HardwareProbes <= 0 {
		c.FFmpeg.HardwareProbes = defaultHardwareProbe
	}
}

func (c *Config) normalizeCompression() {
	c.Compression.DefaultPreset = strings.ToLower(strings.TrimSpace(c.Compression.DefaultPreset))
	if c.Compression.DefaultPreset == "" {
		c.Compression.DefaultPreset = defaultPresetName
	}
	c.Compression.AudioBitrate = strings.TrimSpace(c.Compression.AudioBitrate)
	if c.Compression.AudioBitrate == "" {
		c.Compression.AudioBitrate = defaultAudioBitrate
	}
	if c.Compression.SizeLimitMB == 0 {
		c.Compression.SizeLimitMB = defaultSizeLimitMB
	}
	if c.Compression.MaxWidth == 0 {
		c.Compression.MaxWidth = defaultMaxWidth
	}
	if c.Compression.MaxHeight == 0 {
		c.Compression.MaxHeight = defaultMaxHeight
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
