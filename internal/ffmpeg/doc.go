// Package ffmpeg constructs and runs ffmpeg invocations.
//
// The builder/executor split keeps argument construction pure and testable:
// BuildArgs turns a Plan into the exact argv tail, and Run owns process
// lifecycle, progress reporting, and stderr capture. squish never inspects
// media bytes itself; everything flows through the external binary.
package ffmpeg
