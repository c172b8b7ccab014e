package pipeline

import (
	"context"
	"errors"
	"testing"

	"sublate/internal/captions"
	"sublate/internal/services"
	"sublate/internal/services/gemini"
)

type stubSource struct {
	transcript captions.RawTranscript
	err        error
	calls      int
}

func (s *stubSource) Transcript(context.Context, string) (captions.RawTranscript, error) {
	s.calls++
	return s.transcript, s.err
}

type stubTranslator struct {
	out     string
	err     error
	calls   int
	lastReq gemini.TranslationRequest
}

func (s *stubTranslator) Translate(_ context.Context, req gemini.TranslationRequest) (string, error) {
	s.calls++
	s.lastReq = req
	return s.out, s.err
}

func englishTranscript() captions.RawTranscript {
	return captions.RawTranscript{
		Text:            "Hello everyone and welcome to this video tutorial",
		DurationSeconds: 20,
	}
}

func TestRunPlainMode(t *testing.T) {
	source := &stubSource{transcript: englishTranscript()}
	translator := &stubTranslator{out: "Hola a todos y bienvenidos a este video tutorial amigos"}
	p := New(source, translator)

	result, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "es", Mode: ModePlain})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	// 10 translated words in groups of 5 → 2 cues of 2 seconds each.
	if len(result.Document.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(result.Document.Cues))
	}
	if err := result.Document.Validate(); err != nil {
		t.Fatalf("document violates invariants: %v", err)
	}
	if result.Language.Code != "es" {
		t.Errorf("Language.Code = %q", result.Language.Code)
	}
	if translator.lastReq.Timed {
		t.Error("plain run requested a timed document")
	}
	if translator.lastReq.LanguageName != "Spanish" {
		t.Errorf("prompt language name = %q", translator.lastReq.LanguageName)
	}
}

func TestRunTimedMode(t *testing.T) {
	source := &stubSource{transcript: englishTranscript()}
	translator := &stubTranslator{out: "```vtt\n00:00:00.000 --> 00:00:03.000\nHola a todos\n\n00:00:03.000 --> 00:00:06.000\ny bienvenidos\n```"}
	p := New(source, translator)

	result, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "es", Mode: ModeTimed})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(result.Document.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(result.Document.Cues))
	}
	if !translator.lastReq.Timed {
		t.Error("timed run did not request a timed document")
	}
}

func TestRunUnsupportedLanguageBeforeAnyCall(t *testing.T) {
	source := &stubSource{transcript: englishTranscript()}
	translator := &stubTranslator{out: "hola"}
	p := New(source, translator)

	_, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "xx"})
	if !errors.Is(err, services.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if source.calls != 0 {
		t.Errorf("caption source called %d times, want 0", source.calls)
	}
	if translator.calls != 0 {
		t.Errorf("translator called %d times, want 0", translator.calls)
	}
}

func TestRunNoCaptionsShortCircuitsTranslation(t *testing.T) {
	source := &stubSource{err: services.Wrap(services.ErrNoCaptions, "captions", "fetch", "", nil)}
	translator := &stubTranslator{out: "hola"}
	p := New(source, translator)

	_, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "es"})
	if !errors.Is(err, services.ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions, got %v", err)
	}
	if translator.calls != 0 {
		t.Errorf("translator called %d times, want 0", translator.calls)
	}
}

func TestRunTranslatorFailureIsUpstream(t *testing.T) {
	source := &stubSource{transcript: englishTranscript()}
	translator := &stubTranslator{err: errors.New("connection reset")}
	p := New(source, translator)

	_, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "es"})
	if !errors.Is(err, services.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestRunMalformedTimedDocument(t *testing.T) {
	source := &stubSource{transcript: englishTranscript()}
	translator := &stubTranslator{out: "00:00:05.000 --> 00:00:02.000\nbackwards"}
	p := New(source, translator)

	_, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "es", Mode: ModeTimed})
	if !errors.Is(err, services.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestRunPlainModeUnknownDuration(t *testing.T) {
	source := &stubSource{transcript: captions.RawTranscript{Text: "hello there"}}
	translator := &stubTranslator{out: "hola amigo"}
	p := New(source, translator)

	_, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "es", Mode: ModePlain})
	if !errors.Is(err, services.ErrInsufficientTiming) {
		t.Fatalf("expected ErrInsufficientTiming, got %v", err)
	}
}

func TestRunDegradedFlagPropagates(t *testing.T) {
	transcript := englishTranscript()
	transcript.Degraded = true
	transcript.Title = "Intro to Go"
	source := &stubSource{transcript: transcript}
	translator := &stubTranslator{out: "hola a todos mis amigos"}
	p := New(source, translator)

	result, err := p.Run(context.Background(), Request{VideoID: "dQw4w9WgXcQ", Language: "es"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !result.Degraded {
		t.Error("degraded flag lost")
	}
	if translator.lastReq.VideoTitle != "Intro to Go" {
		t.Errorf("video title not forwarded: %q", translator.lastReq.VideoTitle)
	}
}

func TestParseMode(t *testing.T) {
	if mode, ok := ParseMode("", ModeTimed); !ok || mode != ModeTimed {
		t.Errorf("empty mode should fall back, got %q ok=%v", mode, ok)
	}
	if mode, ok := ParseMode("plain", ModeTimed); !ok || mode != ModePlain {
		t.Errorf("ParseMode(plain) = %q ok=%v", mode, ok)
	}
	if _, ok := ParseMode("srt", ModePlain); ok {
		t.Error("unknown mode should be rejected")
	}
}
