// Package captions normalizes the two upstream transcript behaviors —
// timed caption fragments, or bare video metadata — into a single raw
// transcript value the translation pipeline can consume.
package captions
