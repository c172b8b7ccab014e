package captions

import (
	"context"
	"fmt"
	"log/slog"

	"sublate/internal/services"
)

// Metadata is the video-store contract consumed by the metadata strategy.
type Metadata struct {
	Title           string
	DurationSeconds float64
}

// MetadataClient looks up title and duration for a video.
type MetadataClient interface {
	FetchMetadata(ctx context.Context, videoID string) (Metadata, error)
}

// MetadataSource is the metadata-only strategy: no speech-to-text service is
// wired, so it synthesizes a placeholder transcript and lets the video
// duration, not captions, bound cue timing. Transcripts it produces are
// always marked degraded — the source text is a stand-in, and translation
// fidelity cannot be guaranteed.
type MetadataSource struct {
	client MetadataClient
	logger *slog.Logger
}

func NewMetadataSource(client MetadataClient, logger *slog.Logger) *MetadataSource {
	return &MetadataSource{client: client, logger: logger}
}

func (s *MetadataSource) Transcript(ctx context.Context, videoID string) (RawTranscript, error) {
	meta, err := s.client.FetchMetadata(ctx, videoID)
	if err != nil {
		return RawTranscript{}, services.Wrap(services.ErrUpstreamUnavailable, "captions", "metadata", "metadata lookup failed", err)
	}

	if s.logger != nil {
		s.logger.Info("using metadata placeholder transcript",
			slog.String("video_id", videoID),
			slog.String("title", meta.Title),
			slog.Float64("duration_seconds", meta.DurationSeconds))
	}

	return RawTranscript{
		Text:            placeholderTranscript(meta.Title),
		Title:           meta.Title,
		DurationSeconds: meta.DurationSeconds,
		Degraded:        true,
	}, nil
}

func placeholderTranscript(title string) string {
	return fmt.Sprintf("Hello everyone and welcome to this video titled %q. "+
		"In this segment the presenter walks through the topic step by step, "+
		"covering the fundamental concepts first and then building on them with "+
		"practical examples. Thank you for watching and stay tuned for more.", title)
}
