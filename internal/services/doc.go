// Package services defines the shared error taxonomy for pipeline runs and
// the helpers the HTTP boundary uses to classify failures. Collaborator
// clients live in subpackages (youtube, gemini).
package services
