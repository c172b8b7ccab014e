// Package pipeline runs the transcript-to-timed-subtitle synthesis: source a
// transcript, request one translation, then synthesize or repair a subtitle
// document. A run is a pure function of the request and the injected
// collaborators; no state is shared between runs.
package pipeline
