package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pet-clinic-site/internal/adapters/storage/kvrepo"
	"pet-clinic-site/internal/adapters/storage/memory"
	"pet-clinic-site/internal/domain/pets"
	"pet-clinic-site/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localOpener usa el mismo store en memoria en todas las invocaciones.
func localOpener(store kv.Store) Opener {
	return func(ctx context.Context, server string) (Backend, func() error, error) {
		repo := kvrepo.NewPetsRepo(store, "test", nil)
		return pets.NewService(repo, nil, nil), func() error { return nil }, nil
	}
}

func run(t *testing.T, store kv.Store, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(localOpener(store))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"list", "add", "edit", "remove", "clear", "export", "import"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestAddListEdit(t *testing.T) {
	store := memory.NewKV()

	out, err := run(t, store, "", "add", "--name", "Luna", "--species", "Gato", "--age", "2", "--owner", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Luna")

	_, err = run(t, store, "", "add", "--name", "Toby", "--owner", "Luis", "--age", "1.5")
	require.NoError(t, err)

	_, err = run(t, store, "", "add", "--name", "A", "--owner", "Ana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	out, err = run(t, store, "", "--format", "json", "list", "--species", "Perro")
	require.NoError(t, err)
	var list []pets.Pet
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Toby", list[0].Name)
	assert.Equal(t, 1.5, list[0].Age)

	out, err = run(t, store, "", "edit", "1", "--owner", "Ana María")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana María")

	out, err = run(t, store, "", "--format", "json", "list", "-q", "maría")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Luna", list[0].Name)
	assert.Equal(t, pets.SpeciesCat, list[0].Species)
	assert.Equal(t, float64(2), list[0].Age)

	_, err = run(t, store, "", "--format", "xml", "list")
	assert.Error(t, err)
}

func TestRemoveAndClear_AskForConfirmation(t *testing.T) {
	store := memory.NewKV()
	_, err := run(t, store, "", "add", "--name", "Luna", "--owner", "Ana")
	require.NoError(t, err)
	_, err = run(t, store, "", "add", "--name", "Toby", "--owner", "Luis")
	require.NoError(t, err)

	out, err := run(t, store, "n\n", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelado")

	out, err = run(t, store, "y\n", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 eliminada")

	_, err = run(t, store, "", "--yes", "remove", "1")
	assert.ErrorIs(t, err, pets.ErrNotFound)

	out, err = run(t, store, "", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelado")

	_, err = run(t, store, "", "clear", "--yes")
	require.NoError(t, err)
	out, err = run(t, store, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No hay mascotas.")
}

func TestExportImport(t *testing.T) {
	store := memory.NewKV()
	_, err := run(t, store, "", "add", "--name", "Luna", "--species", "Gato", "--owner", "Ana", "--notes", "control anual")
	require.NoError(t, err)

	yamlOut, err := run(t, store, "", "export")
	require.NoError(t, err)
	assert.Contains(t, yamlOut, "name: Luna")

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "pets.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlOut), 0o600))

	_, err = run(t, store, "", "clear", "--yes")
	require.NoError(t, err)

	out, err := run(t, store, "", "--yes", "import", yamlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Importadas 1")

	jsonOut, err := run(t, store, "", "export", "-o", "json")
	require.NoError(t, err)
	var list []pets.Pet
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "control anual", list[0].Notes)
	assert.Equal(t, int64(1), list[0].ID)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`[{"id":1,"name":"Luna","owner":"Ana"},{"id":1,"name":"Toby","owner":"Luis"}]`), 0o600))
	_, err = run(t, store, "", "--yes", "import", badPath)
	assert.ErrorIs(t, err, pets.ErrInvalidInput)
}
