// Package testsupport provides helpers shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"sublate/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config suitable for tests: a placeholder API key, no
// daemon lock, and the history store pointed at a unique temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Translator.APIKey = "test"
	cfg.Server.Bind = "127.0.0.1:0"
	cfg.Server.StaticDir = ""
	cfg.Server.LockPath = ""
	cfg.History.Enabled = false
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithHistory enables the request-history store on the test config.
func WithHistory() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = true
	}
}

// WithStaticDir points the server at a static asset directory.
func WithStaticDir(dir string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Server.StaticDir = dir
	}
}

// WithAllowedOrigins overrides the CORS allow list.
func WithAllowedOrigins(origins ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Server.AllowedOrigins = origins
	}
}
