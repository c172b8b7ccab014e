// Package server hosts the HTTP boundary: the subtitle generation endpoint,
// static client serving, CORS and request-ID middleware, and the mapping
// from pipeline errors to response statuses.
package server
