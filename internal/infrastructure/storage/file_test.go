package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rations-api/internal/infrastructure/storage"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Get("clave")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Set("clave", `[{"name":"pera"}]`))
	got, err := s.Get("clave")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"pera"}]`, got)

	// Sobrescritura
	require.NoError(t, s.Set("clave", "[]"))
	got, err = s.Get("clave")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	require.NoError(t, s.Delete("clave"))
	_, err = s.Get("clave")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Borrado idempotente
	require.NoError(t, s.Delete("clave"))
}

// Las claves con prefijo de espacio de nombres llevan ':' y no deben escapar
// del directorio ni producir rutas inválidas.
func TestFileStore_ClavesConCaracteresDelPrefijo(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("rations-calculator:custom-aliments", "[]"))
	got, err := s.Get("rations-calculator:custom-aliments")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), ":")
	assert.NotContains(t, entries[0].Name(), string(filepath.Separator))
}

func TestFileStore_CreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "data")
	_, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
