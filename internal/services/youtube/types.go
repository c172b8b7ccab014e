package youtube

import (
	"strings"

	"sublate/internal/captions"
)

// timedTextResponse mirrors the json3 timedtext payload: a flat event list
// where each event carries a start offset, a duration, and text segments.
type timedTextResponse struct {
	Events []timedTextEvent `json:"events"`
}

type timedTextEvent struct {
	StartMs    int64             `json:"tStartMs"`
	DurationMs int64             `json:"dDurationMs"`
	Segments   []timedTextSegNod `json:"segs"`
}

type timedTextSegNod struct {
	Text string `json:"utf8"`
}

// fragments converts the wire events into caption fragments, skipping
// bookkeeping events that carry no text (window definitions, newlines).
func (r timedTextResponse) fragments() []captions.Fragment {
	out := make([]captions.Fragment, 0, len(r.Events))
	for _, event := range r.Events {
		var b strings.Builder
		for _, seg := range event.Segments {
			b.WriteString(seg.Text)
		}
		text := strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", " "))
		if text == "" {
			continue
		}
		out = append(out, captions.Fragment{
			Text:     text,
			Start:    float64(event.StartMs) / 1000,
			Duration: float64(event.DurationMs) / 1000,
		})
	}
	return out
}

// playerRequest is the minimal Innertube player call body.
type playerRequest struct {
	VideoID string `json:"videoId"`
	Context struct {
		Client struct {
			ClientName    string `json:"clientName"`
			ClientVersion string `json:"clientVersion"`
		} `json:"client"`
	} `json:"context"`
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
	} `json:"playabilityStatus"`
	VideoDetails struct {
		Title         string `json:"title"`
		LengthSeconds string `json:"lengthSeconds"`
	} `json:"videoDetails"`
}
