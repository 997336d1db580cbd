package textutil_test

import (
	"testing"
	"time"

	"squish/internal/textutil"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.0s"},
		{45100 * time.Millisecond, "45.1s"},
		{time.Minute, "1m 0.0s"},
		{3*time.Minute + 12400*time.Millisecond, "3m 12.4s"},
		{-time.Second, "0.0s"},
	}
	for _, tc := range cases {
		if got := textutil.FormatElapsed(tc.in); got != tc.want {
			t.Fatalf("FormatElapsed(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCapitalizeASCII(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  medium ", "Medium"},
		{"GPU", "Gpu"},
		{"x", "X"},
	}
	for _, tc := range cases {
		if got := textutil.CapitalizeASCII(tc.in); got != tc.want {
			t.Fatalf("CapitalizeASCII(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
