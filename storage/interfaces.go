package storage

import (
	"context"

	"github.com/selekta/selekta/core"
)

// VectorCache persists candidate embeddings keyed by content ID and model.
// Implementations must be thread-safe and support concurrent access.
//
// Vectors are keyed by the candidate profile's content-based ID together
// with the embedding model name, so a model change naturally invalidates
// previously cached vectors.
type VectorCache interface {
	// GetVector retrieves a cached vector by candidate ID and model.
	// Returns ErrNotFound if no vector is cached for the pair.
	GetVector(ctx context.Context, id core.ID, model string) (*core.CandidateVector, error)

	// PutVectors stores one or more vectors, overwriting existing entries.
	// Vectors are written as given; the caller owns UpdatedAt.
	PutVectors(ctx context.Context, vectors ...*core.CandidateVector) error

	// DeleteVectors removes cached vectors by candidate ID and model.
	// Missing entries are not an error.
	DeleteVectors(ctx context.Context, model string, ids ...core.ID) error

	// Close closes the storage backend and releases resources.
	Close() error
}
