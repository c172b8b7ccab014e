package captions

import (
	"context"
	"log/slog"
	"strings"

	"sublate/internal/services"
)

// CaptionClient is the external caption-store contract consumed by the
// structured strategy. An empty fragment slice means the store knows the
// video but holds no captions in the requested language.
type CaptionClient interface {
	FetchCaptions(ctx context.Context, videoID, lang string) ([]Fragment, error)
}

// TimedTextSource is the structured-caption strategy: it queries the caption
// store for a specific source language and assembles the fragments into one
// contiguous transcript. Absence of captions is terminal, not transient —
// there is nothing to translate.
type TimedTextSource struct {
	client   CaptionClient
	language string
	logger   *slog.Logger
}

// NewTimedTextSource builds the structured strategy. sourceLanguage is the
// caption language requested from the store, usually "en".
func NewTimedTextSource(client CaptionClient, sourceLanguage string, logger *slog.Logger) *TimedTextSource {
	if strings.TrimSpace(sourceLanguage) == "" {
		sourceLanguage = "en"
	}
	return &TimedTextSource{client: client, language: sourceLanguage, logger: logger}
}

func (s *TimedTextSource) Transcript(ctx context.Context, videoID string) (RawTranscript, error) {
	fragments, err := s.client.FetchCaptions(ctx, videoID, s.language)
	if err != nil {
		return RawTranscript{}, services.Wrap(services.ErrUpstreamUnavailable, "captions", "fetch", "caption store request failed", err)
	}
	if len(fragments) == 0 {
		return RawTranscript{}, services.Wrap(services.ErrNoCaptions, "captions", "fetch", "caption store returned no fragments", nil)
	}

	text := Assemble(fragments)
	if strings.TrimSpace(text) == "" {
		return RawTranscript{}, services.Wrap(services.ErrNoCaptions, "captions", "assemble", "assembled transcript is empty", nil)
	}

	last := fragments[len(fragments)-1]
	duration := last.Start + last.Duration

	if s.logger != nil {
		s.logger.Debug("assembled transcript",
			slog.String("video_id", videoID),
			slog.Int("fragments", len(fragments)),
			slog.Float64("duration_seconds", duration))
	}

	return RawTranscript{Text: text, DurationSeconds: duration}, nil
}
