package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/selekta/selekta/core"
	"github.com/selekta/selekta/storage"
)

// VectorCache implements storage.VectorCache for BadgerDB.
type VectorCache struct {
	backend *Backend
}

var _ storage.VectorCache = (*VectorCache)(nil)

// NewVectorCache opens a persistent vector cache at the given path.
//
// Returns storage.VectorCache interface to enforce abstraction.
func NewVectorCache(path string) (storage.VectorCache, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &VectorCache{backend: backend}, nil
}

// newVectorCache wraps an existing backend. Used by the testing helpers.
func newVectorCache(backend *Backend) *VectorCache {
	return &VectorCache{backend: backend}
}

// GetVector retrieves a cached vector by candidate ID and model.
func (c *VectorCache) GetVector(ctx context.Context, id core.ID, model string) (*core.CandidateVector, error) {
	var result *core.CandidateVector
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(model, id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalCandidateVector(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	if result.Model != model {
		return nil, storage.ErrModelMismatch
	}
	return result, nil
}

// PutVectors stores one or more vectors, overwriting existing entries.
// Vectors are written as given; the caller owns UpdatedAt.
func (c *VectorCache) PutVectors(ctx context.Context, vectors ...*core.CandidateVector) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		for _, vector := range vectors {
			key := makeVectorKey(vector.Model, vector.Id)
			if err := tx.Set(key, storage.MarshalCandidateVector(vector)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteVectors removes cached vectors by candidate ID and model.
func (c *VectorCache) DeleteVectors(ctx context.Context, model string, ids ...core.ID) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			err := tx.Delete(makeVectorKey(model, id))
			if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountVectors returns the number of vectors cached for a model.
func (c *VectorCache) CountVectors(ctx context.Context, model string) (int, error) {
	count := 0
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeVectorModelPrefix(model)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Close closes the underlying backend.
func (c *VectorCache) Close() error {
	return c.backend.Close()
}
