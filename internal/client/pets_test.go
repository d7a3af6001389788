package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"pet-clinic-site/internal/client"
	"pet-clinic-site/internal/domain/pets"
	"pet-clinic-site/internal/ports/confirm"
	"pet-clinic-site/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *client.Pets {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	c, err := client.NewPets(ts.URL, 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestPets_RoundTripAgainstRouter(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	luna, err := c.Create(ctx, pets.CreateInput{Name: "Luna", Species: "Gato", Age: "2", Owner: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), luna.ID)

	_, err = c.Create(ctx, pets.CreateInput{Name: "Toby", Species: "Perro", Age: "1.5", Owner: "Luis"})
	require.NoError(t, err)

	got, err := c.List(ctx, pets.Filter{Species: pets.SpeciesDog})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1.5, got[0].Age)

	updated, err := c.Update(ctx, luna.ID, pets.CreateInput{Name: "Luna", Species: "Gato", Age: "3", Owner: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, float64(3), updated.Age)
	assert.NotNil(t, updated.UpdatedAt)

	assert.ErrorIs(t, c.RemoveConfirmed(ctx, luna.ID, confirm.Always(false)), pets.ErrNotConfirmed)
	require.NoError(t, c.RemoveConfirmed(ctx, luna.ID, confirm.Always(true)))

	_, err = c.Get(ctx, luna.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	require.NoError(t, c.ClearAllConfirmed(ctx, confirm.Always(true)))
	all, err := c.List(ctx, pets.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPets_TranslatesErrors(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.Create(ctx, pets.CreateInput{Name: "A", Owner: "Ana"})
	var verr *pets.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.ErrorIs(t, err, pets.ErrInvalidInput)

	assert.ErrorIs(t, c.RemoveConfirmed(ctx, 42, confirm.Always(true)), pets.ErrNotFound)
	assert.ErrorIs(t, c.Replace(ctx, nil), client.ErrRemoteImport)
}
