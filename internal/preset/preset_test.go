package preset_test

import (
	"strings"
	"testing"

	"squish/internal/preset"
)

func TestNamesOrderedByQuality(t *testing.T) {
	names := preset.Names()
	want := []string{"insane", "high", "medium", "low", "potato"}
	if len(names) != len(want) {
		t.Fatalf("unexpected preset count: %d", len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("unexpected order: got %v want %v", names, want)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	p, ok := preset.Lookup(" Medium ")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if p.CRF != 28 || p.Speed != "fast" || p.MaxRate != "500k" || p.BufSize != "1000k" {
		t.Fatalf("unexpected medium parameters: %+v", p)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := preset.Lookup("ultra"); ok {
		t.Fatal("expected lookup to fail for unknown preset")
	}
	if preset.Valid("") {
		t.Fatal("empty name should not be valid")
	}
}

func TestParseListSingle(t *testing.T) {
	presets, err := preset.ParseList("potato")
	if err != nil {
		t.Fatalf("ParseList returned error: %v", err)
	}
	if len(presets) != 1 || presets[0].Name != "potato" {
		t.Fatalf("unexpected presets: %+v", presets)
	}
}

func TestParseListCommaSeparatedDedupes(t *testing.T) {
	presets, err := preset.ParseList("high, low ,HIGH")
	if err != nil {
		t.Fatalf("ParseList returned error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets after dedupe, got %d", len(presets))
	}
	if presets[0].Name != "high" || presets[1].Name != "low" {
		t.Fatalf("unexpected presets: %+v", presets)
	}
}

func TestParseListAll(t *testing.T) {
	presets, err := preset.ParseList("ALL")
	if err != nil {
		t.Fatalf("ParseList returned error: %v", err)
	}
	if len(presets) != 5 {
		t.Fatalf("expected all 5 presets, got %d", len(presets))
	}
}

func TestParseListUnknownName(t *testing.T) {
	_, err := preset.ParseList("medium,ultra")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "ultra") {
		t.Fatalf("error should name the offender: %v", err)
	}
}

func TestParseListEmpty(t *testing.T) {
	if _, err := preset.ParseList(" , ,"); err == nil {
		t.Fatal("expected error for empty list")
	}
}

func TestEstimateBytes(t *testing.T) {
	p, _ := preset.Lookup("medium")
	if got := p.EstimateBytes(100 * 1024 * 1024); got != int64(30*1024*1024) {
		t.Fatalf("unexpected medium estimate: %d", got)
	}
	if got := p.EstimateBytes(0); got != 0 {
		t.Fatalf("expected zero estimate for empty input, got %d", got)
	}
}

func TestQualityScoreOrdering(t *testing.T) {
	high, _ := preset.Lookup("high")
	medium, _ := preset.Lookup("medium")
	low, _ := preset.Lookup("low")
	if !(high.QualityScore() > medium.QualityScore() && medium.QualityScore() > low.QualityScore()) {
		t.Fatalf("quality scores out of order: %d %d %d",
			high.QualityScore(), medium.QualityScore(), low.QualityScore())
	}
}
