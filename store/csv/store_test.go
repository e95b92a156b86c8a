package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/selekta/selekta/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStore_LoadAll(t *testing.T) {
	path := writeTestCSV(t, `id,role,skills,location,years_experience,languages
c-001,Ingeniero de Mantenimiento,mantenimiento preventivo;sap pm,Bogotá,5,Español;Inglés
c-002,Técnico Electricista,,Medellín,2,
`)

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	profiles, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "c-001", profiles[0].ID)
	assert.Equal(t, []string{"mantenimiento preventivo", "sap pm"}, profiles[0].Skills)
	assert.Equal(t, []string{"Español", "Inglés"}, profiles[0].Languages)
	assert.Equal(t, 5, profiles[0].YearsExperience)

	assert.Equal(t, "c-002", profiles[1].ID)
	assert.Nil(t, profiles[1].Skills)
	assert.Nil(t, profiles[1].Languages)
}

func TestStore_LoadAllSkipsInvalidRows(t *testing.T) {
	path := writeTestCSV(t, `id,role,skills,location,years_experience,languages
,Ingeniero,,Bogotá,1,
c-002,Operario,,Cali,3,
`)

	s, err := Open(path)
	require.NoError(t, err)

	profiles, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "c-002", profiles[0].ID)
}

func TestStore_LoadAllMalformedYears(t *testing.T) {
	path := writeTestCSV(t, `id,role,skills,location,years_experience,languages
c-001,Ingeniero,,Bogotá,cinco,
`)

	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.LoadAll(context.Background())
	assert.ErrorIs(t, err, store.ErrMalformedRecord)
}

func TestStore_OpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestStore_LoadAllEmptyFile(t *testing.T) {
	path := writeTestCSV(t, "")

	s, err := Open(path)
	require.NoError(t, err)

	profiles, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
