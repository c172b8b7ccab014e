package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains bind address and HTTP boundary configuration.
type Server struct {
	Bind           string   `toml:"bind"`
	StaticDir      string   `toml:"static_dir"`
	AllowedOrigins []string `toml:"allowed_origins"`
	RequestTimeout int      `toml:"request_timeout"` // seconds
	LockPath       string   `toml:"lock_path"`
}

// Captions contains caption-source configuration.
type Captions struct {
	Strategy       string `toml:"strategy"` // "timedtext" or "metadata"
	SourceLanguage string `toml:"source_language"`
	BaseURL        string `toml:"base_url"`
}

// Translator contains Gemini connection settings.
type Translator struct {
	APIKey            string `toml:"api_key"`
	BaseURL           string `toml:"base_url"`
	Model             string `toml:"model"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
	OutputMode        string `toml:"output_mode"` // "plain" or "timed-document"
}

// Subtitles contains cue synthesis policy.
type Subtitles struct {
	WordsPerCue int     `toml:"words_per_cue"`
	CueSeconds  float64 `toml:"cue_seconds"`
}

// History contains the request-history store settings.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full application configuration.
type Config struct {
	Server     Server     `toml:"server"`
	Captions   Captions   `toml:"captions"`
	Translator Translator `toml:"translator"`
	Subtitles  Subtitles  `toml:"subtitles"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the standard location of the config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sublate", "config.toml"), nil
}

// Load reads the configuration from path (or the default location when path
// is empty), applies environment overrides, and validates the result. The
// bool return reports whether the file was missing and defaults were used.
func Load(path string) (*Config, string, bool, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, "", false, err
		}
		resolved = defaultPath
	}
	expanded, err := ExpandPath(resolved)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	missing := false
	data, err := os.ReadFile(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		missing = true
	case err != nil:
		return nil, "", false, fmt.Errorf("read config %s: %w", expanded, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", expanded, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, expanded, missing, nil
}

// WriteSample writes the annotated sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}

// EnsureDirectories creates the directories the configuration points at.
func (c *Config) EnsureDirectories() error {
	if c.History.Enabled && c.History.Path != "" {
		if err := os.MkdirAll(filepath.Dir(c.History.Path), 0o755); err != nil {
			return fmt.Errorf("ensure history directory: %w", err)
		}
	}
	return nil
}

// ExpandPath resolves a leading "~" against the current user's home.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		c.Translator.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("SUBLATE_BIND")); v != "" {
		c.Server.Bind = v
	}
	if v := strings.TrimSpace(os.Getenv("SUBLATE_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) normalize() error {
	c.Captions.Strategy = strings.ToLower(strings.TrimSpace(c.Captions.Strategy))
	c.Translator.OutputMode = strings.ToLower(strings.TrimSpace(c.Translator.OutputMode))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	for _, field := range []*string{&c.History.Path, &c.Server.StaticDir, &c.Server.LockPath} {
		expanded, err := ExpandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}
