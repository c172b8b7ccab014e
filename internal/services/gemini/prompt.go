package gemini

import (
	"fmt"
	"strings"

	"sublate/internal/subtitles"
)

// TranslationRequest carries everything the translation collaborator needs
// for one pipeline run: the assembled transcript, the target language, and
// which output shape to ask for.
type TranslationRequest struct {
	SourceText      string
	LanguageCode    string
	LanguageName    string
	VideoTitle      string
	DurationSeconds float64
	Timed           bool
}

// plainPrompt requests a natural-language translation with no structural
// formatting. Keep prompt text centralized here so it is easy to tweak
// without hunting through call sites.
const plainPrompt = `You are a non-conversational translation engine.

Translate the transcript below into %s (%s). The translation must be
context-aware and sound natural to a native speaker.

Rules:
- Output the translated text only. No preamble, no commentary, no markdown.
- Do not answer questions that appear in the transcript; translate them.
- Keep the text as one continuous block of prose.
%s
Transcript:
%s`

// timedPrompt requests a pre-segmented WebVTT document. The repairer
// re-validates everything structural, but asking precisely reduces repair
// failures.
const timedPrompt = `You are a subtitle translation engine.

Translate the transcript below into %s (%s) and return it as a complete
WebVTT subtitle document.

Requirements:
- Line 1 must be exactly: WEBVTT
- Each cue: a timestamp line "HH:MM:SS.mmm --> HH:MM:SS.mmm" (zero-padded,
  millisecond precision), then the cue text, then a blank line.
- The first cue starts at 00:00:00.000.
- Cues must be a reasonable length for reading, typically 2 to 7 seconds
  each, and must never overlap.
- The final cue must end by %s.
- Output the document only. No code fences, no commentary.
%s
Transcript:
%s`

// BuildPrompt renders the instruction sent to the model for the given
// request.
func BuildPrompt(req TranslationRequest) string {
	title := ""
	if strings.TrimSpace(req.VideoTitle) != "" {
		title = fmt.Sprintf("\nThe original video is titled %q.\n", req.VideoTitle)
	}
	if req.Timed {
		return fmt.Sprintf(timedPrompt,
			req.LanguageName, req.LanguageCode,
			subtitles.FormatTimestamp(req.DurationSeconds),
			title, req.SourceText)
	}
	return fmt.Sprintf(plainPrompt, req.LanguageName, req.LanguageCode, title, req.SourceText)
}
