package subtitles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Header is the mandatory first-line token of a WebVTT document.
const Header = "WEBVTT"

const arrow = " --> "

// FormatTimestamp renders an offset in seconds as HH:MM:SS.mmm, zero-padded,
// millisecond precision.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3_600_000
	minutes := (totalMillis % 3_600_000) / 60_000
	secs := (totalMillis % 60_000) / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}

// ParseTimestamp converts a WebVTT timestamp to seconds. Serialization is
// always HH:MM:SS.mmm, but parsing also accepts the short MM:SS.mmm form and
// a comma millisecond separator, both common in collaborator output.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	normalized := strings.ReplaceAll(value, ",", ".")
	clock, millisText, ok := strings.Cut(normalized, ".")
	if !ok {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	fields := strings.Split(clock, ":")
	var hoursText, minutesText, secondsText string
	switch len(fields) {
	case 3:
		hoursText, minutesText, secondsText = fields[0], fields[1], fields[2]
	case 2:
		hoursText, minutesText, secondsText = "0", fields[0], fields[1]
	default:
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	// The fraction must be exactly three digits: a shorter one ("02.5") is
	// ambiguous between tenths and milliseconds, and guessing would
	// reinterpret timing rather than reject it.
	if len(millisText) != 3 || !allDigits(millisText) {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hoursText)
	minutes, errM := strconv.Atoi(minutesText)
	seconds, errS := strconv.Atoi(secondsText)
	millis, errMS := strconv.Atoi(millisText)
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 || millis < 0 || millis > 999 {
		return 0, fmt.Errorf("timestamp %q out of range", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// Serialize renders a document in wire format: the header line, a blank
// line, then each cue as a timestamp line followed by its text and a blank
// separator. The output parses back to an equal cue sequence.
func Serialize(doc Document) string {
	var b strings.Builder
	b.Grow(len(doc.Cues)*64 + 16)
	b.WriteString(Header)
	b.WriteString("\n\n")
	for _, cue := range doc.Cues {
		b.WriteString(FormatTimestamp(cue.Start))
		b.WriteString(arrow)
		b.WriteString(FormatTimestamp(cue.End))
		b.WriteByte('\n')
		b.WriteString(cue.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Parse reads a WebVTT body into a cue sequence. A line whose two halves
// around the arrow both parse as timestamps opens a cue; following non-blank
// lines are its text, joined with a line break. An arrow line inside a cue
// body is text, so cue text containing a literal "-->" survives a
// round-trip; an arrow line at block start that fails the timestamp grammar
// is a hard error, never skipped. The header line and cue identifiers are
// tolerated but not required. Parse does not validate cue ordering — that
// is the caller's concern.
func Parse(raw string) (Document, error) {
	var doc Document
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var current *Cue
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i == 0 && strings.HasPrefix(trimmed, Header) {
			continue
		}
		if strings.Contains(line, "-->") {
			start, end, err := parseTimestampLine(line)
			if err == nil {
				doc.Cues = append(doc.Cues, Cue{Start: start, End: end})
				current = &doc.Cues[len(doc.Cues)-1]
				continue
			}
			if current == nil {
				return Document{}, fmt.Errorf("line %d: %w", i+1, err)
			}
			// Inside a cue body the arrow is just text; fall through.
		}
		if trimmed == "" {
			current = nil
			continue
		}
		if current == nil {
			// Cue identifier or stray note line; ignored.
			continue
		}
		if current.Text == "" {
			current.Text = trimmed
		} else {
			current.Text += "\n" + trimmed
		}
	}
	return doc, nil
}

func parseTimestampLine(line string) (start, end float64, err error) {
	startText, endText, _ := strings.Cut(line, "-->")
	if start, err = ParseTimestamp(startText); err != nil {
		return 0, 0, err
	}
	if end, err = ParseTimestamp(endText); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
