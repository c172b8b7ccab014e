package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel markers for every way a pipeline run can fail. Callers classify
// with errors.Is; Wrap attaches component context while preserving the marker.
var (
	ErrInvalidVideoReference = errors.New("invalid video reference")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
	ErrNoCaptions            = errors.New("no captions available")
	ErrInsufficientTiming    = errors.New("insufficient timing data")
	ErrMalformedDocument     = errors.New("malformed subtitle document")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrUpstreamUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a stable machine-readable name for the error's taxonomy slot.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidVideoReference):
		return "invalid_video_reference"
	case errors.Is(err, ErrUnsupportedLanguage):
		return "unsupported_language"
	case errors.Is(err, ErrNoCaptions):
		return "no_captions_available"
	case errors.Is(err, ErrInsufficientTiming):
		return "insufficient_timing_data"
	case errors.Is(err, ErrMalformedDocument):
		return "malformed_subtitle_document"
	case errors.Is(err, context.DeadlineExceeded):
		return "upstream_timeout"
	default:
		return "upstream_unavailable"
	}
}

// HTTPStatus maps a pipeline error to the response status the boundary
// should write. Caller faults are 4xx; collaborator faults are 5xx.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidVideoReference), errors.Is(err, ErrUnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoCaptions):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientTiming):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// PublicMessage returns the human-readable detail safe to place in a
// response body. Collaborator error text stays in logs; responses carry only
// the taxonomy's own phrasing.
func PublicMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidVideoReference):
		return "could not extract a video id from the request"
	case errors.Is(err, ErrUnsupportedLanguage):
		return "the requested language is not supported"
	case errors.Is(err, ErrNoCaptions):
		return "no captions are available for this video"
	case errors.Is(err, ErrInsufficientTiming):
		return "video duration is unknown; cannot synthesize cue timing"
	case errors.Is(err, ErrMalformedDocument):
		return "the translation service returned an unusable subtitle document"
	case errors.Is(err, context.DeadlineExceeded):
		return "an upstream service timed out"
	default:
		return "an upstream service is unavailable"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
