package subtitles

import (
	"log/slog"
	"strings"

	"sublate/internal/services"
)

const (
	// DefaultWordsPerCue is the group size used when partitioning translated
	// prose into cues.
	DefaultWordsPerCue = 5
	// DefaultCueSeconds is the fixed duration assigned to each cue. Cue
	// timing is deliberately rate-independent: every cue in a document gets
	// the same duration, so adjacent cues tile the timeline exactly.
	DefaultCueSeconds = 2.0
)

// Synthesizer deterministically partitions untimed translated text into a
// cue sequence with synthetic sequential timestamps. It is used when the
// translator returns plain prose and no real per-word timing exists.
type Synthesizer struct {
	WordsPerCue int
	CueSeconds  float64
	Logger      *slog.Logger
}

// Synthesize splits text on whitespace into fixed-size word groups and emits
// one fixed-duration cue per non-empty group. The known video duration must
// be positive; without it there is nothing to bound cue timing and the run
// fails with the insufficient-timing marker rather than fabricating
// indefinite cues. The words-per-second rate is computed as a diagnostic
// only and never drives cue duration.
func (s Synthesizer) Synthesize(text string, durationSeconds float64) (Document, error) {
	wordsPerCue := s.WordsPerCue
	if wordsPerCue <= 0 {
		wordsPerCue = DefaultWordsPerCue
	}
	cueSeconds := s.CueSeconds
	if cueSeconds <= 0 {
		cueSeconds = DefaultCueSeconds
	}

	if durationSeconds <= 0 {
		return Document{}, services.Wrap(services.ErrInsufficientTiming, "synthesizer", "chunk", "video duration unknown or zero", nil)
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return Document{}, services.Wrap(services.ErrMalformedDocument, "synthesizer", "chunk", "translation contained no words", nil)
	}

	if s.Logger != nil {
		wordsPerSecond := float64(len(words)) / durationSeconds
		s.Logger.Debug("synthesizing cues",
			slog.Int("words", len(words)),
			slog.Float64("duration_seconds", durationSeconds),
			slog.Float64("words_per_second", wordsPerSecond))
	}

	var doc Document
	for i := 0; i < len(words); i += wordsPerCue {
		group := words[i:min(i+wordsPerCue, len(words))]
		cueText := strings.TrimSpace(strings.Join(group, " "))
		if cueText == "" {
			continue
		}
		index := len(doc.Cues)
		start := float64(index) * cueSeconds
		doc.Cues = append(doc.Cues, Cue{
			Text:  cueText,
			Start: start,
			End:   start + cueSeconds,
		})
	}
	return doc, nil
}
