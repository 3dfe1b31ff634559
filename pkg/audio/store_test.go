package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "audio"))
	require.NoError(t, err)
	return store
}

func TestSaveAndRemove(t *testing.T) {
	store := setupStore(t)

	ref, err := store.Save(strings.NewReader("not really audio"), ".m4a")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".m4a"))
	assert.True(t, store.Exists(ref))

	path, err := store.Path(ref)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not really audio", string(data))

	require.NoError(t, store.Remove(ref))
	assert.False(t, store.Exists(ref))
}

func TestRemoveMissingBlobIsAnError(t *testing.T) {
	store := setupStore(t)

	err := store.Remove("never-existed.m4a")
	assert.Error(t, err)
}

func TestRefsCannotEscapeDirectory(t *testing.T) {
	store := setupStore(t)

	for _, ref := range []string{"", "../evil.m4a", "a/b.m4a", ".hidden"} {
		_, err := store.Path(ref)
		assert.Error(t, err, "ref %q must be rejected", ref)
	}
}

func TestSaveWithoutExtension(t *testing.T) {
	store := setupStore(t)

	ref, err := store.Save(strings.NewReader("x"), "")
	require.NoError(t, err)
	assert.NotContains(t, ref, ".")
	assert.True(t, store.Exists(ref))
}
