package captions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sublate/internal/services"
)

type stubCaptionClient struct {
	fragments []Fragment
	err       error
	calls     int
	lastLang  string
}

func (c *stubCaptionClient) FetchCaptions(_ context.Context, _ string, lang string) ([]Fragment, error) {
	c.calls++
	c.lastLang = lang
	return c.fragments, c.err
}

type stubMetadataClient struct {
	meta  Metadata
	err   error
	calls int
}

func (c *stubMetadataClient) FetchMetadata(context.Context, string) (Metadata, error) {
	c.calls++
	return c.meta, c.err
}

func TestTimedTextSourceAssembles(t *testing.T) {
	client := &stubCaptionClient{fragments: []Fragment{
		{Text: "one", Start: 0, Duration: 3},
		{Text: "two", Start: 3, Duration: 4.5},
	}}
	source := NewTimedTextSource(client, "en", nil)

	transcript, err := source.Transcript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Transcript error: %v", err)
	}
	if transcript.Text != "one two" {
		t.Errorf("Text = %q", transcript.Text)
	}
	if transcript.DurationSeconds != 7.5 {
		t.Errorf("DurationSeconds = %v, want 7.5", transcript.DurationSeconds)
	}
	if transcript.Degraded {
		t.Error("structured transcript should not be degraded")
	}
	if client.lastLang != "en" {
		t.Errorf("requested caption language %q, want en", client.lastLang)
	}
}

func TestTimedTextSourceEmptyFragmentsFails(t *testing.T) {
	source := NewTimedTextSource(&stubCaptionClient{}, "en", nil)
	_, err := source.Transcript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, services.ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions, got %v", err)
	}
}

func TestTimedTextSourceUpstreamFailure(t *testing.T) {
	source := NewTimedTextSource(&stubCaptionClient{err: errors.New("connection refused")}, "en", nil)
	_, err := source.Transcript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, services.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestMetadataSourceDegraded(t *testing.T) {
	client := &stubMetadataClient{meta: Metadata{Title: "Intro to Go", DurationSeconds: 300}}
	source := NewMetadataSource(client, nil)

	transcript, err := source.Transcript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Transcript error: %v", err)
	}
	if !transcript.Degraded {
		t.Error("metadata transcript must be marked degraded")
	}
	if transcript.DurationSeconds != 300 {
		t.Errorf("DurationSeconds = %v, want 300", transcript.DurationSeconds)
	}
	if !strings.Contains(transcript.Text, "Intro to Go") {
		t.Errorf("placeholder should mention the title: %q", transcript.Text)
	}
}

func TestMetadataSourceUpstreamFailure(t *testing.T) {
	source := NewMetadataSource(&stubMetadataClient{err: errors.New("boom")}, nil)
	if _, err := source.Transcript(context.Background(), "dQw4w9WgXcQ"); !errors.Is(err, services.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
