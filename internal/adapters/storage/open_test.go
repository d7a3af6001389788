package storage

import (
	"context"
	"path/filepath"
	"testing"

	"pet-clinic-site/internal/config"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, opts Options) {
	t.Helper()
	ctx := context.Background()

	s, closeFn, err := Open(ctx, opts, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	require.NoError(t, s.Set(ctx, "petclinic_theme", "dark"))
	v, ok, err := s.Get(ctx, "petclinic_theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestOpen_Memory(t *testing.T) {
	roundTrip(t, Options{})
	roundTrip(t, Options{Backend: "MEMORY"})
}

func TestOpen_SQLite(t *testing.T) {
	roundTrip(t, Options{Backend: BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "pets.db")})
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	roundTrip(t, Options{Backend: BackendRedis, RedisAddr: mr.Addr()})
}

func TestOpen_PostgresRequiresDSN(t *testing.T) {
	_, closeFn, err := Open(context.Background(), Options{Backend: BackendPostgres}, nil)
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Backend: "localstorage"}, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOptionsFrom(t *testing.T) {
	opts := OptionsFrom(&config.Config{
		StoreBackend:  BackendRedis,
		RedisAddr:     "cache:6379",
		RedisDB:       2,
		DBAutoMigrate: true,
	})
	assert.Equal(t, BackendRedis, opts.Backend)
	assert.Equal(t, "cache:6379", opts.RedisAddr)
	assert.Equal(t, 2, opts.RedisDB)
	assert.True(t, opts.AutoMigrate)
}
