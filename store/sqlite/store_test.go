package sqlite

import (
	"context"
	"testing"

	"github.com/selekta/selekta/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_UpsertLoadAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	profiles := []*core.CandidateProfile{
		{
			ID:              "c-001",
			Role:            "Ingeniero de Mantenimiento",
			Skills:          []string{"mantenimiento preventivo", "sap pm"},
			Location:        "Bogotá",
			YearsExperience: 5,
			Languages:       []string{"Español", "Inglés"},
		},
		{
			ID:              "c-002",
			Role:            "Técnico Electricista",
			Location:        "Medellín",
			YearsExperience: 2,
		},
	}

	require.NoError(t, s.Upsert(ctx, profiles...))

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "c-001", loaded[0].ID)
	assert.Equal(t, []string{"mantenimiento preventivo", "sap pm"}, loaded[0].Skills)
	assert.Equal(t, []string{"Español", "Inglés"}, loaded[0].Languages)
	assert.Equal(t, 5, loaded[0].YearsExperience)

	assert.Equal(t, "c-002", loaded[1].ID)
	assert.Nil(t, loaded[1].Skills)
}

func TestStore_UpsertOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, &core.CandidateProfile{
		ID: "c-001", Role: "Operario", Location: "Cali",
	}))
	require.NoError(t, s.Upsert(ctx, &core.CandidateProfile{
		ID: "c-001", Role: "Supervisor de Planta", Location: "Cali", YearsExperience: 8,
	}))

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Supervisor de Planta", loaded[0].Role)
	assert.Equal(t, 8, loaded[0].YearsExperience)
}

func TestStore_UpsertRejectsInvalid(t *testing.T) {
	s := newTestStore(t)

	err := s.Upsert(context.Background(), &core.CandidateProfile{
		ID: "", Role: "Ingeniero",
	})
	assert.ErrorIs(t, err, core.ErrInvalidProfile)
}

func TestStore_LoadAllEmpty(t *testing.T) {
	s := newTestStore(t)

	loaded, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
