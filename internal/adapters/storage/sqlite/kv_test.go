package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path string) *KVStore {
	t.Helper()
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVStore_SetGetDelete(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "kv.db"))
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "petclinic_pets_v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "petclinic_pets_v1", `[{"id":1}]`))
	require.NoError(t, s.Set(ctx, "petclinic_pets_v1", `[{"id":1},{"id":2}]`))

	v, ok, err := s.Get(ctx, "petclinic_pets_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1},{"id":2}]`, v)

	require.NoError(t, s.Delete(ctx, "petclinic_pets_v1"))
	_, ok, err = s.Get(ctx, "petclinic_pets_v1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "petclinic_theme", "dark"))
	require.NoError(t, first.Close())

	second := openTestStore(t, path)
	v, ok, err := second.Get(ctx, "petclinic_theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestKVStore_RejectsEmptyKey(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "kv.db"))
	_, _, err := s.Get(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyKey)
}
