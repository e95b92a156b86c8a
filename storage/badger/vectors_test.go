package badger

import (
	"context"
	"testing"
	"time"

	"github.com/selekta/selekta/core"
	"github.com/selekta/selekta/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = "paraphrase-multilingual"

func newTestCache(t *testing.T) storage.VectorCache {
	t.Helper()
	cache, err := NewMemoryVectorCache()
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestVectorCache_PutGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	stamp := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	vector := &core.CandidateVector{
		Id:        core.IDFromContent("perfil-1"),
		Model:     testModel,
		Vector:    []float32{0.1, 0.2, 0.3},
		UpdatedAt: stamp,
	}

	require.NoError(t, cache.PutVectors(ctx, vector))

	// The caller's record is stored as-is, not mutated.
	assert.True(t, vector.UpdatedAt.Equal(stamp))

	got, err := cache.GetVector(ctx, vector.Id, testModel)
	require.NoError(t, err)
	assert.Equal(t, vector.Id, got.Id)
	assert.Equal(t, testModel, got.Model)
	assert.True(t, got.UpdatedAt.Equal(stamp))
	require.Len(t, got.Vector, 3)
	assert.InDelta(t, 0.2, got.Vector[1], 1e-6)
}

func TestVectorCache_GetMissing(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.GetVector(context.Background(), core.ID(99), testModel)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestVectorCache_ModelIsolation(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	id := core.IDFromContent("perfil-2")
	require.NoError(t, cache.PutVectors(ctx, &core.CandidateVector{
		Id:     id,
		Model:  testModel,
		Vector: []float32{1, 0},
	}))

	// Same candidate under a different model is a miss.
	_, err := cache.GetVector(ctx, id, "otro-modelo")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestVectorCache_Overwrite(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	id := core.ID(7)
	require.NoError(t, cache.PutVectors(ctx, &core.CandidateVector{
		Id: id, Model: testModel, Vector: []float32{1, 1},
	}))
	require.NoError(t, cache.PutVectors(ctx, &core.CandidateVector{
		Id: id, Model: testModel, Vector: []float32{2, 2},
	}))

	got, err := cache.GetVector(ctx, id, testModel)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.Vector[0], 1e-6)
}

func TestVectorCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	id := core.ID(11)
	require.NoError(t, cache.PutVectors(ctx, &core.CandidateVector{
		Id: id, Model: testModel, Vector: []float32{0.5},
	}))

	require.NoError(t, cache.DeleteVectors(ctx, testModel, id))
	_, err := cache.GetVector(ctx, id, testModel)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting a missing entry is not an error.
	assert.NoError(t, cache.DeleteVectors(ctx, testModel, core.ID(12345)))
}

func TestVectorCache_Count(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	concrete := cache.(*VectorCache)

	for i := 1; i <= 3; i++ {
		require.NoError(t, cache.PutVectors(ctx, &core.CandidateVector{
			Id: core.ID(i), Model: testModel, Vector: []float32{float32(i)},
		}))
	}
	require.NoError(t, cache.PutVectors(ctx, &core.CandidateVector{
		Id: core.ID(4), Model: "otro-modelo", Vector: []float32{4},
	}))

	count, err := concrete.CountVectors(ctx, testModel)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
