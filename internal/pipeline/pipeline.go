package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sublate/internal/captions"
	"sublate/internal/language"
	"sublate/internal/logging"
	"sublate/internal/services"
	"sublate/internal/services/gemini"
	"sublate/internal/subtitles"
)

// Mode selects the shape the translation collaborator is asked to return.
type Mode string

const (
	// ModePlain requests untimed prose and synthesizes cue timing locally.
	ModePlain Mode = "plain"
	// ModeTimed requests a pre-segmented WebVTT document and repairs it.
	ModeTimed Mode = "timed-document"
)

// ParseMode validates a mode string, defaulting empty input to fallback.
func ParseMode(value string, fallback Mode) (Mode, bool) {
	switch Mode(strings.TrimSpace(value)) {
	case "":
		return fallback, true
	case ModePlain:
		return ModePlain, true
	case ModeTimed:
		return ModeTimed, true
	default:
		return "", false
	}
}

// Translator is the external translation collaborator: one structured
// instruction in, one opaque text payload out. Implementations perform no
// retries; failures propagate unchanged.
type Translator interface {
	Translate(ctx context.Context, req gemini.TranslationRequest) (string, error)
}

// Request identifies one pipeline run.
type Request struct {
	VideoID  string
	Language string
	Mode     Mode
}

// Result is a completed run: a validated document plus the context the
// boundary needs to shape its response.
type Result struct {
	Document subtitles.Document
	Language language.Language
	Mode     Mode
	Degraded bool
	Elapsed  time.Duration
}

// Pipeline wires the collaborators for a deployment. Safe for concurrent
// use; runs share nothing but the (stateless) collaborator clients.
type Pipeline struct {
	source     captions.Source
	translator Translator
	synth      subtitles.Synthesizer
	logger     *slog.Logger
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

// WithSynthesizer overrides the default cue synthesizer policy.
func WithSynthesizer(synth subtitles.Synthesizer) Option {
	return func(p *Pipeline) {
		p.synth = synth
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New constructs a pipeline over the given collaborators.
func New(source captions.Source, translator Translator, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:     source,
		translator: translator,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.synth.Logger = p.logger
	return p
}

// Run executes one request end to end. The three network-dependent stages
// run strictly sequentially; cancellation of ctx abandons whichever stage is
// in flight and no partial document is ever returned.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	started := time.Now()

	// Language validation happens before any network call so an unsupported
	// tag costs nothing upstream.
	lang, ok := language.Resolve(req.Language)
	if !ok {
		return Result{}, services.Wrap(services.ErrUnsupportedLanguage, "pipeline", "resolve language",
			"requested "+strings.TrimSpace(req.Language)+", supported: "+strings.Join(language.SupportedCodes(), ", "), nil)
	}
	mode := req.Mode
	if mode != ModePlain && mode != ModeTimed {
		mode = ModePlain
	}

	log := p.logger.With(
		slog.String(logging.FieldVideoID, req.VideoID),
		slog.String(logging.FieldLanguage, lang.Code),
		slog.String(logging.FieldMode, string(mode)))

	transcript, err := p.source.Transcript(ctx, req.VideoID)
	if err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(transcript.Text) == "" {
		return Result{}, services.Wrap(services.ErrNoCaptions, "pipeline", "source transcript", "empty transcript", nil)
	}
	log.Debug("transcript sourced",
		slog.Int("chars", len(transcript.Text)),
		slog.Float64("duration_seconds", transcript.DurationSeconds),
		slog.Bool("degraded", transcript.Degraded))

	translated, err := p.translator.Translate(ctx, gemini.TranslationRequest{
		SourceText:      transcript.Text,
		LanguageCode:    lang.Code,
		LanguageName:    lang.Name,
		VideoTitle:      transcript.Title,
		DurationSeconds: transcript.DurationSeconds,
		Timed:           mode == ModeTimed,
	})
	if err != nil {
		return Result{}, services.Wrap(services.ErrUpstreamUnavailable, "pipeline", "translate", "translation request failed", err)
	}

	var doc subtitles.Document
	switch mode {
	case ModeTimed:
		doc, err = subtitles.Repair(translated)
	default:
		doc, err = p.synth.Synthesize(translated, transcript.DurationSeconds)
	}
	if err != nil {
		return Result{}, err
	}

	elapsed := time.Since(started)
	log.Info("subtitle document ready",
		slog.Int("cues", len(doc.Cues)),
		slog.Duration("elapsed", elapsed))

	return Result{
		Document: doc,
		Language: lang,
		Mode:     mode,
		Degraded: transcript.Degraded,
		Elapsed:  elapsed,
	}, nil
}
