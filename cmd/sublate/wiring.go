package main

import (
	"fmt"
	"log/slog"
	"os"

	"sublate/internal/captions"
	"sublate/internal/config"
	"sublate/internal/logging"
	"sublate/internal/pipeline"
	"sublate/internal/services/gemini"
	"sublate/internal/services/youtube"
	"sublate/internal/subtitles"
)

func buildLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
}

func buildSource(cfg *config.Config, logger *slog.Logger) (captions.Source, error) {
	var opts []youtube.Option
	if cfg.Captions.BaseURL != "" {
		opts = append(opts, youtube.WithBaseURL(cfg.Captions.BaseURL))
	}
	client := youtube.NewClient(opts...)

	switch cfg.Captions.Strategy {
	case "timedtext":
		return captions.NewTimedTextSource(client, cfg.Captions.SourceLanguage, logger), nil
	case "metadata":
		return captions.NewMetadataSource(client, logger), nil
	default:
		return nil, fmt.Errorf("unknown caption strategy %q", cfg.Captions.Strategy)
	}
}

func buildPipeline(cfg *config.Config, logger *slog.Logger) (*pipeline.Pipeline, error) {
	source, err := buildSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	translator := gemini.NewClient(gemini.Config{
		APIKey:            cfg.Translator.APIKey,
		BaseURL:           cfg.Translator.BaseURL,
		Model:             cfg.Translator.Model,
		TimeoutSeconds:    cfg.Translator.TimeoutSeconds,
		RequestsPerMinute: cfg.Translator.RequestsPerMinute,
	})

	return pipeline.New(source, translator,
		pipeline.WithSynthesizer(subtitles.Synthesizer{
			WordsPerCue: cfg.Subtitles.WordsPerCue,
			CueSeconds:  cfg.Subtitles.CueSeconds,
		}),
		pipeline.WithLogger(logger),
	), nil
}
