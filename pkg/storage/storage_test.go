package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store, err := New(Config{Type: "local", LocalDir: dir, PublicBaseURL: "https://cdn.cliptokk.com"})
	require.NoError(t, err)

	url, err := store.Put(context.Background(), AvatarKey(7, "png"), []byte("fake-png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.cliptokk.com/avatars/user-7.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "user-7.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), data)
}

func TestLocalStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := New(Config{Type: "local", LocalDir: dir})
	require.NoError(t, err)

	key := AvatarKey(3, "")
	_, err = store.Put(context.Background(), key, []byte("x"), "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), key))
	_, err = os.Stat(filepath.Join(dir, "avatars", "user-3.jpg"))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete(context.Background(), key))
}

func TestNewDefaultsToLocal(t *testing.T) {
	dir := t.TempDir()
	store, err := New(Config{Type: "", LocalDir: dir})
	require.NoError(t, err)
	_, ok := store.(*LocalStore)
	assert.True(t, ok)
}

func TestS3RequiresBucket(t *testing.T) {
	_, err := New(Config{Type: "s3"})
	assert.Error(t, err)
}

func TestAvatarKey(t *testing.T) {
	assert.Equal(t, "avatars/user-42.jpg", AvatarKey(42, ""))
	assert.Equal(t, "avatars/user-42.webp", AvatarKey(42, "webp"))
	assert.Equal(t, "avatars/user-42.png", AvatarKey(42, ".png"))
}
