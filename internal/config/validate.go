package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCaptions(); err != nil {
		return err
	}
	if err := c.validateTranslator(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must be set")
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("server.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateCaptions() error {
	switch c.Captions.Strategy {
	case "timedtext", "metadata":
		return nil
	default:
		return fmt.Errorf("captions.strategy must be \"timedtext\" or \"metadata\", got %q", c.Captions.Strategy)
	}
}

func (c *Config) validateTranslator() error {
	if c.Translator.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/sublate/config.toml"
		}
		return fmt.Errorf("translator.api_key is required. Set GEMINI_API_KEY or edit %s (create with 'sublate config init')", defaultPath)
	}
	switch c.Translator.OutputMode {
	case "plain", "timed-document":
	default:
		return fmt.Errorf("translator.output_mode must be \"plain\" or \"timed-document\", got %q", c.Translator.OutputMode)
	}
	if c.Translator.TimeoutSeconds <= 0 {
		return errors.New("translator.timeout_seconds must be positive")
	}
	if c.Translator.RequestsPerMinute < 0 {
		return errors.New("translator.requests_per_minute must not be negative")
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	if c.Subtitles.WordsPerCue <= 0 {
		return errors.New("subtitles.words_per_cue must be positive")
	}
	if c.Subtitles.CueSeconds <= 0 {
		return errors.New("subtitles.cue_seconds must be positive")
	}
	return nil
}
