package rank

import "errors"

var (
	// ErrEmbedderRequired is returned when an Engine is constructed without
	// an embedding provider.
	ErrEmbedderRequired = errors.New("embedding provider is required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbeddingMismatch is returned when a batch embedding call returns a
	// different number of vectors than texts submitted.
	ErrEmbeddingMismatch = errors.New("embedding count does not match text count")
)
