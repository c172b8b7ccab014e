package subtitles

import (
	"errors"
	"strings"
	"testing"

	"sublate/internal/services"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "palabra"
	}
	return strings.Join(parts, " ")
}

func TestSynthesizeTwentyFiveWordsTenSeconds(t *testing.T) {
	doc, err := Synthesizer{}.Synthesize(words(25), 10)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if len(doc.Cues) != 5 {
		t.Fatalf("expected 5 cues, got %d", len(doc.Cues))
	}
	for i, cue := range doc.Cues {
		wantStart := float64(i) * 2
		if cue.Start != wantStart || cue.End != wantStart+2 {
			t.Errorf("cue %d = [%v,%v), want [%v,%v)", i, cue.Start, cue.End, wantStart, wantStart+2)
		}
	}
}

func TestSynthesizeNonOverlapInvariant(t *testing.T) {
	for _, wordCount := range []int{1, 4, 5, 6, 23, 100} {
		doc, err := Synthesizer{}.Synthesize(words(wordCount), 60)
		if err != nil {
			t.Fatalf("Synthesize(%d words) error: %v", wordCount, err)
		}
		if err := doc.Validate(); err != nil {
			t.Errorf("Synthesize(%d words) violated cue invariants: %v", wordCount, err)
		}
		for i := 1; i < len(doc.Cues); i++ {
			if doc.Cues[i-1].End != doc.Cues[i].Start {
				t.Errorf("Synthesize(%d words): cue %d does not tile exactly", wordCount, i)
			}
		}
	}
}

func TestSynthesizePreservesWordOrder(t *testing.T) {
	doc, err := Synthesizer{}.Synthesize("uno dos tres cuatro cinco seis siete", 14)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	joined := ""
	for _, cue := range doc.Cues {
		if joined != "" {
			joined += " "
		}
		joined += cue.Text
	}
	if joined != "uno dos tres cuatro cinco seis siete" {
		t.Fatalf("word order corrupted: %q", joined)
	}
}

func TestSynthesizeUnknownDurationFails(t *testing.T) {
	for _, duration := range []float64{0, -3} {
		_, err := Synthesizer{}.Synthesize(words(10), duration)
		if !errors.Is(err, services.ErrInsufficientTiming) {
			t.Errorf("duration %v: expected ErrInsufficientTiming, got %v", duration, err)
		}
	}
}

func TestSynthesizeIgnoresWhitespaceRuns(t *testing.T) {
	doc, err := Synthesizer{}.Synthesize("  hola   mundo  \n\t ", 10)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if len(doc.Cues) != 1 || doc.Cues[0].Text != "hola mundo" {
		t.Fatalf("unexpected cues: %#v", doc.Cues)
	}
}

func TestSynthesizeEmptyTranslationFails(t *testing.T) {
	if _, err := (Synthesizer{}).Synthesize("   \n ", 10); err == nil {
		t.Fatal("expected error for empty translation")
	}
}
