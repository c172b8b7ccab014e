package captions

import (
	"context"
)

// Fragment is a single timed text unit as reported by the upstream caption
// store, pre-translation.
type Fragment struct {
	Text     string
	Start    float64 // seconds
	Duration float64 // seconds
}

// RawTranscript is the assembled source-language text plus whatever timing
// bound the strategy could recover. DurationSeconds of zero means unknown.
// Degraded marks transcripts whose text is a stand-in rather than real
// captions; callers must surface that to the requester.
type RawTranscript struct {
	Text            string
	Title           string
	DurationSeconds float64
	Degraded        bool
}

// Source produces a transcript for a video. The two strategies (structured
// captions, metadata-only) are mutually exclusive variants of this one
// capability, selected once per deployment.
type Source interface {
	Transcript(ctx context.Context, videoID string) (RawTranscript, error)
}
