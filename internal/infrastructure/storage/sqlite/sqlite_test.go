package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diarykeeper/internal/infrastructure/migration"
	"diarykeeper/internal/infrastructure/storage"
)

func newTestStorage(t *testing.T, path string) *Storage {
	t.Helper()
	s, err := New(path, migration.DefaultEngine)
	require.NoError(t, err)
	return s
}

func TestStorage_GetPut(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, filepath.Join(t.TempDir(), "diary.db"))
	defer s.Close()

	_, err := s.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Put(ctx, storage.KeyUser, `{"name":"Anna","pin":"1234"}`))
	v, err := s.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Anna","pin":"1234"}`, v)

	require.NoError(t, s.Put(ctx, storage.KeyUser, `{"name":"Anna","pin":"4321"}`))
	v, err = s.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Anna","pin":"4321"}`, v)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "diary.db")

	s := newTestStorage(t, path)
	require.NoError(t, s.Put(ctx, storage.KeyNotes, "[]"))
	require.NoError(t, s.Close())

	s = newTestStorage(t, path)
	defer s.Close()

	v, err := s.Get(ctx, storage.KeyNotes)
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "diary.db"), migration.DefaultEngine)
	assert.Error(t, err)
}
