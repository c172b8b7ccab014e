// Package subtitles holds the timed-cue data model and everything that
// produces or consumes the WebVTT wire format: the serializer, the parser,
// the plain-text cue synthesizer, and the repairer that normalizes untrusted
// translator output into a structurally valid document.
package subtitles
