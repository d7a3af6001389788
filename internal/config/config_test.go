package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"PORT", "STORE_BACKEND", "STORE_NAMESPACE", "SEARCH_DEBOUNCE", "STATUS_TTL", "TOAST_FADE", "TOAST_TTL"} {
		unsetEnv(t, k)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "petclinic", cfg.StoreNamespace)
	assert.Equal(t, 200*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 2800*time.Millisecond, cfg.StatusTTL)
	assert.Equal(t, 1800*time.Millisecond, cfg.ToastFade)
	assert.Equal(t, 2200*time.Millisecond, cfg.ToastTTL)
}

func TestLoadCustomValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", " Redis ")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("SEARCH_DEBOUNCE", "50ms")
	t.Setenv("TOAST_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, 50*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 2200*time.Millisecond, cfg.ToastTTL)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	unsetEnv(t, "STORE_NAMESPACE")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORE_NAMESPACE=vetcare\n"), 0o600))

	cfg := Load()

	assert.Equal(t, "vetcare", cfg.StoreNamespace)
}

// unsetEnv borra key durante el test y la restaura al final.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
		}
	})
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
