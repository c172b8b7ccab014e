package subtitles

import (
	"fmt"
)

// Cue is one timed subtitle unit: text plus start/end offsets in seconds.
type Cue struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Document is an ordered, non-overlapping cue sequence. Construct one per
// request and treat it as immutable once built.
type Document struct {
	Cues []Cue
}

// Validate checks the invariants downstream players require: every cue's
// start precedes its end, and adjacent cues never overlap. Cues must already
// be in order; Validate never reorders, since reordering would detach text
// from its intended timing.
func (d Document) Validate() error {
	for i, cue := range d.Cues {
		if cue.Start < 0 {
			return fmt.Errorf("cue %d: negative start %.3f", i+1, cue.Start)
		}
		if cue.Start >= cue.End {
			return fmt.Errorf("cue %d: start %.3f not before end %.3f", i+1, cue.Start, cue.End)
		}
		if i > 0 && d.Cues[i-1].End > cue.Start {
			return fmt.Errorf("cue %d: overlaps previous cue (%.3f > %.3f)", i+1, d.Cues[i-1].End, cue.Start)
		}
	}
	return nil
}

// Duration returns the end offset of the final cue, or zero for an empty
// document.
func (d Document) Duration() float64 {
	if len(d.Cues) == 0 {
		return 0
	}
	return d.Cues[len(d.Cues)-1].End
}
