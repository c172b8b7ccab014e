package subtitles

import (
	"strings"

	"sublate/internal/services"
)

// Repair normalizes untrusted translator output into a structurally valid
// document. It strips surrounding code fences, trims whitespace, and
// restores a missing header, since those are mechanically cheap wrapping
// noise. It never invents, interpolates, or reorders timestamps: substantive
// timing corruption fails with the malformed-document marker.
func Repair(raw string) (Document, error) {
	cleaned := strings.TrimSpace(stripCodeFence(raw))
	if cleaned == "" {
		return Document{}, services.Wrap(services.ErrMalformedDocument, "repair", "normalize", "translator returned an empty document", nil)
	}
	if !strings.HasPrefix(cleaned, Header) {
		cleaned = Header + "\n\n" + cleaned
	}

	doc, err := Parse(cleaned)
	if err != nil {
		return Document{}, services.Wrap(services.ErrMalformedDocument, "repair", "parse", "", err)
	}
	if len(doc.Cues) == 0 {
		return Document{}, services.Wrap(services.ErrMalformedDocument, "repair", "parse", "document contains no cues", nil)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, services.Wrap(services.ErrMalformedDocument, "repair", "validate", "", err)
	}
	return doc, nil
}

// stripCodeFence removes a markdown fence wrapped around the payload,
// including an optional language hint on the opening fence. Interior fences
// are left alone.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return raw
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return raw
	}
	lines = lines[1:] // drop ```vtt / ``` opener
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
