package credentials

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".env"))

	value, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.Empty(t, store.Get())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	store := NewStore(path)
	require.NoError(t, store.Save("sk-or-abc123"))
	assert.Equal(t, "sk-or-abc123", store.Get())

	fresh := NewStore(path)
	value, err := fresh.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-or-abc123", value)
}

func TestSaveOverwritesPreviousKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	store := NewStore(path)
	require.NoError(t, store.Save("old-key"))
	require.NoError(t, store.Save("new-key"))

	fresh := NewStore(path)
	value, err := fresh.Load()
	require.NoError(t, err)
	assert.Equal(t, "new-key", value)
}

func TestLoadFallsBackToProcessEnv(t *testing.T) {
	t.Setenv(KeyName, "env-key")

	store := NewStore(filepath.Join(t.TempDir(), ".env"))
	value, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-key", value)
}
