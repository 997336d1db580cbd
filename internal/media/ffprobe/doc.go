// Package ffprobe wraps the ffprobe binary to inspect media containers.
//
// Inspect shells out with JSON output enabled and decodes the stream and
// format sections into a Result. Accessors tolerate the stringly-typed
// numbers ffprobe emits and fall back to zero values on malformed input, so
// callers can degrade gracefully (no progress bar, no scaling decision)
// instead of aborting an encode.
package ffprobe
