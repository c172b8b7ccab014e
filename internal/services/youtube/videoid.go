package youtube

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractVideoID pulls the 11-character video id out of a raw id or any of
// the common YouTube URL shapes (watch, youtu.be, shorts, embed, live).
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty video reference")
	}
	if isVideoID(input) {
		return input, nil
	}

	parsed, err := url.Parse(input)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("unrecognized video reference %q", input)
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	host = strings.TrimPrefix(host, "m.")

	var candidate string
	switch host {
	case "youtu.be":
		candidate = strings.Trim(parsed.Path, "/")
	case "youtube.com", "music.youtube.com":
		segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
		switch {
		case segments[0] == "watch":
			candidate = parsed.Query().Get("v")
		case len(segments) >= 2 && (segments[0] == "shorts" || segments[0] == "embed" || segments[0] == "live"):
			candidate = segments[1]
		}
	}
	if candidate != "" {
		// Strip any trailing path noise a shared link may carry.
		if i := strings.IndexAny(candidate, "/?&"); i >= 0 {
			candidate = candidate[:i]
		}
	}
	if !isVideoID(candidate) {
		return "", fmt.Errorf("unrecognized video reference %q", input)
	}
	return candidate, nil
}

func isVideoID(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
