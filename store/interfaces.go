package store

import (
	"context"

	"github.com/selekta/selekta/core"
)

// CandidateStore loads candidate profiles from a backing source.
// Implementations must be safe for concurrent use.
type CandidateStore interface {
	// LoadAll returns every candidate profile in the store.
	// Each profile has been validated; invalid rows are skipped with a
	// warning rather than failing the whole load.
	LoadAll(ctx context.Context) ([]*core.CandidateProfile, error)

	// Close releases resources held by the store.
	Close() error
}
