package compress

import (
	"path/filepath"
	"strings"
)

func stem(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultOutput derives the output path for a single compression run:
// the input stem with a _compressed suffix, alongside the input.
func DefaultOutput(input string) string {
	return filepath.Join(filepath.Dir(input), stem(input)+"_compressed.mp4")
}

// PresetOutput derives the output path for one leg of a multi-preset run:
// the input stem with the preset name as suffix, alongside the input.
func PresetOutput(input, presetName string) string {
	return filepath.Join(filepath.Dir(input), stem(input)+"_"+presetName+".mp4")
}

// BatchOutput derives the output path for a batch run into dir.
func BatchOutput(dir, input string) string {
	return filepath.Join(dir, stem(input)+"_compressed.mp4")
}

// BatchPresetOutput derives the output path for one preset leg of a batch
// run into dir.
func BatchPresetOutput(dir, input, presetName string) string {
	return filepath.Join(dir, stem(input)+"_"+presetName+".mp4")
}
