package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesMarker(t *testing.T) {
	cause := errors.New("socket closed")
	err := Wrap(ErrUpstreamUnavailable, "translator", "generate", "request failed", cause)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected marker to survive wrapping, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to survive wrapping, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsToUpstream(t *testing.T) {
	err := Wrap(nil, "captions", "fetch", "", nil)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("nil marker should default to ErrUpstreamUnavailable, got %v", err)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{Wrap(ErrInvalidVideoReference, "server", "extract", "", nil), http.StatusBadRequest},
		{Wrap(ErrUnsupportedLanguage, "pipeline", "resolve", "", nil), http.StatusBadRequest},
		{Wrap(ErrNoCaptions, "captions", "fetch", "", nil), http.StatusNotFound},
		{Wrap(ErrInsufficientTiming, "synthesizer", "chunk", "", nil), http.StatusUnprocessableEntity},
		{Wrap(ErrMalformedDocument, "repair", "validate", "", nil), http.StatusBadGateway},
		{Wrap(ErrUpstreamUnavailable, "translator", "generate", "", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("unclassified"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestKind(t *testing.T) {
	if got := Kind(Wrap(ErrMalformedDocument, "repair", "parse", "", nil)); got != "malformed_subtitle_document" {
		t.Fatalf("Kind = %q", got)
	}
	if got := Kind(nil); got != "" {
		t.Fatalf("Kind(nil) = %q, want empty", got)
	}
}

func TestPublicMessageHidesCollaboratorText(t *testing.T) {
	cause := fmt.Errorf("gemini said: %s", "quota exceeded for project 12345")
	err := Wrap(ErrUpstreamUnavailable, "translator", "generate", "request failed", cause)
	msg := PublicMessage(err)
	if msg == "" {
		t.Fatal("expected a public message")
	}
	if containsAny(msg, "gemini", "quota", "12345") {
		t.Fatalf("public message leaked collaborator detail: %q", msg)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				return true
			}
		}
	}
	return false
}
