// Package logging constructs the application's slog loggers and defines the
// standardized structured field names used across the service.
package logging
