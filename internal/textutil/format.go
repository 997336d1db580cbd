// Package textutil provides small formatting helpers for user-facing reports.
package textutil

import (
	"fmt"
	"strings"
	"time"
)

// FormatElapsed renders a wall-clock duration the way the reports show it:
// "3m 12.4s" past the minute mark, "45.1s" below it.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := d.Seconds()
	minutes := int(seconds) / 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %.1fs", minutes, seconds-float64(minutes*60))
	}
	return fmt.Sprintf("%.1fs", seconds)
}

// CapitalizeASCII uppercases the first byte of an ASCII word and lowercases
// the rest.
func CapitalizeASCII(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
