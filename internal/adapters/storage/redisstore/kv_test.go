package redisstore

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_SetGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := Open(ctx, Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, ok, err := s.Get(ctx, "petclinic_users_v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "petclinic_users_v1", `[]`))
	got, err := mr.Get("petclinic_users_v1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
	assert.Zero(t, mr.TTL("petclinic_users_v1"))

	v, ok, err := s.Get(ctx, "petclinic_users_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Delete(ctx, "petclinic_users_v1"))
	assert.False(t, mr.Exists("petclinic_users_v1"))
}

func TestKVStore_GetFailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := Open(ctx, Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	mr.Close()

	_, _, err = s.Get(ctx, "petclinic_pets_v1")
	assert.Error(t, err)
}

func TestOpen_FailsOnUnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Open(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}
