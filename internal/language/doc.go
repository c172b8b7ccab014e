// Package language validates requested subtitle languages against the fixed
// supported set and resolves human-readable names for translation prompts.
package language
