package logging

import (
	"context"
	"log/slog"
)

// Standardized structured logging keys.
const (
	// FieldComponent names the subsystem emitting the record.
	FieldComponent = "component"
	// FieldRequestID is the per-request correlation identifier.
	FieldRequestID = "request_id"
	// FieldVideoID identifies the video a record concerns.
	FieldVideoID = "video_id"
	// FieldLanguage is the requested target language code.
	FieldLanguage = "language"
	// FieldMode is the pipeline output mode.
	FieldMode = "mode"
)

type requestIDKey struct{}

// WithRequestID stores a request correlation id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext extracts the request correlation id, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with fields derived from the
// supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		logger = logger.With(slog.String(FieldRequestID, id))
	}
	return logger
}
