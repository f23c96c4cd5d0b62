package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge-api/internal/config"
)

func newTestStore(t *testing.T) *LocalMediaStore {
	t.Helper()
	store, err := NewLocalMediaStore(&config.MediaConfig{Root: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestSaveWritesFileAndReturnsRelativePath(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save(context.Background(), "game_images/hero.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "game_images/hero.png", path)

	data, err := os.ReadFile(filepath.Join(store.Root(), "game_images", "hero.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, "a.png", []byte("old"))
	require.NoError(t, err)
	_, err = store.Save(ctx, "a.png", []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.Root(), "a.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestSaveRejectsPathEscape(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, subpath := range []string{
		"../outside.png",
		"dir/../../outside.png",
		"/etc/passwd",
	} {
		_, err := store.Save(ctx, subpath, []byte("x"))
		assert.Error(t, err, "subpath %q must be rejected", subpath)
	}
}

func TestNewLocalMediaStoreDefaultsRoot(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	store, err := NewLocalMediaStore(&config.MediaConfig{})
	require.NoError(t, err)
	assert.Equal(t, "media", store.Root())
	assert.DirExists(t, filepath.Join(dir, "media"))
}
