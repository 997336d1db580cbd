// Package preset defines the named quality presets the compressor exposes.
//
// A preset bundles the libx264 rate-control parameters (CRF target, encoder
// speed, and the maxrate/bufsize pair that caps bitrate spikes) under a
// memorable name. Hardware encoders reuse the CRF value through their own
// quality flags.
package preset

import (
	"fmt"
	"strings"
)

// Preset is a named bundle of compression parameter defaults.
type Preset struct {
	Name        string
	Description string
	BestFor     string
	CRF         int
	Speed       string
	MaxRate     string
	BufSize     string

	// SizeRatio is the rough output/input size ratio used for estimates
	// before any encode runs.
	SizeRatio float64
}

// Presets ordered from highest quality to smallest output.
var ordered = []Preset{
	{Name: "insane", Description: "Maximum quality, slow compression", BestFor: "Professional work, archival", CRF: 18, Speed: "veryslow", MaxRate: "1200k", BufSize: "2400k", SizeRatio: 0.70},
	{Name: "high", Description: "High quality with good compression", BestFor: "Important videos, presentations", CRF: 23, Speed: "slow", MaxRate: "800k", BufSize: "1600k", SizeRatio: 0.50},
	{Name: "medium", Description: "Balanced quality and size", BestFor: "Most Discord videos", CRF: 28, Speed: "fast", MaxRate: "500k", BufSize: "1000k", SizeRatio: 0.30},
	{Name: "low", Description: "Fast compression, smaller files", BestFor: "Quick sharing, previews", CRF: 32, Speed: "fast", MaxRate: "300k", BufSize: "600k", SizeRatio: 0.20},
	{Name: "potato", Description: "Maximum compression", BestFor: "When file size matters most", CRF: 35, Speed: "veryfast", MaxRate: "200k", BufSize: "400k", SizeRatio: 0.12},
}

var byName = func() map[string]Preset {
	m := make(map[string]Preset, len(ordered))
	for _, p := range ordered {
		m[p.Name] = p
	}
	return m
}()

// All returns every preset ordered from highest quality to smallest output.
func All() []Preset {
	out := make([]Preset, len(ordered))
	copy(out, ordered)
	return out
}

// Names returns preset names ordered from highest quality to smallest output.
func Names() []string {
	names := make([]string, 0, len(ordered))
	for _, p := range ordered {
		names = append(names, p.Name)
	}
	return names
}

// Lookup resolves a preset by name, case-insensitively.
func Lookup(name string) (Preset, bool) {
	p, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Valid reports whether name resolves to a known preset.
func Valid(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// ParseList expands a preset argument into concrete presets. The value may be
// a single name, a comma-separated list, or "all" for every preset. Duplicates
// collapse to the first occurrence; unknown names are an error.
func ParseList(value string) ([]Preset, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return nil, fmt.Errorf("preset list is empty")
	}
	if trimmed == "all" {
		return All(), nil
	}

	seen := make(map[string]struct{})
	presets := make([]Preset, 0, 2)
	for _, part := range strings.Split(trimmed, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		p, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (valid: %s, or \"all\")", name, strings.Join(Names(), ", "))
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		presets = append(presets, p)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("preset list is empty")
	}
	return presets, nil
}

// EstimateBytes returns a rough compressed size for the given input size.
// Estimates come from typical compression ratios and say nothing about the
// actual content, so treat them as a guide only.
func (p Preset) EstimateBytes(inputBytes int64) int64 {
	if inputBytes <= 0 {
		return 0
	}
	return int64(float64(inputBytes) * p.SizeRatio)
}

// QualityScore ranks presets for the benchmark's quality/time trade-off
// analysis. Higher is better quality.
func (p Preset) QualityScore() int {
	switch p.Name {
	case "insane":
		return 5
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}
