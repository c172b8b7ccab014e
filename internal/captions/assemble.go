package captions

import "strings"

// Assemble joins fragment text with single-space separators, preserving the
// original chronological order. No fragment is dropped and no punctuation or
// casing normalization is applied: once timing is discarded for translation,
// fragment order is the only ordering signal left.
func Assemble(fragments []Fragment) string {
	if len(fragments) == 0 {
		return ""
	}
	parts := make([]string, len(fragments))
	for i, fragment := range fragments {
		parts[i] = fragment.Text
	}
	return strings.Join(parts, " ")
}
