package hwaccel

import (
	"context"
	"time"
)

// SetListEncodersForTests overrides the `ffmpeg -encoders` runner during tests.
func SetListEncodersForTests(fn func(context.Context, string) ([]string, error)) func() {
	previous := listEncoders
	listEncoders = fn
	return func() {
		listEncoders = previous
	}
}

// SetSmokeTestForTests overrides the one-frame encode probe during tests.
func SetSmokeTestForTests(fn func(context.Context, string, string, time.Duration) error) func() {
	previous := smokeTest
	smokeTest = fn
	return func() {
		smokeTest = previous
	}
}
