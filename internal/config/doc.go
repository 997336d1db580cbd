// Package config loads, normalizes, and validates squish configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/squish/config.toml or a
// project-local squish.toml. The Config type centralizes every knob the CLI
// needs: ffmpeg/ffprobe binaries, the Discord size limit, quality preset
// defaults, and output/state directories.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
