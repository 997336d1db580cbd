// Package compress sequences the single-file compression workflow and the
// loops built on top of it (multi-preset output and batch processing).
//
// The workflow is probe, plan, encode, analyze: inspect the source with
// ffprobe, choose an encoder and scale filter, run ffmpeg, then compare
// file sizes against the configured upload limit. Every run, successful or
// not, lands in the history store when one is attached.
package compress
