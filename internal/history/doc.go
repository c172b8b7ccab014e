// Package history persists a per-request audit trail (video, language,
// outcome, timing) in SQLite. Generated subtitle documents themselves are
// never stored.
package history
