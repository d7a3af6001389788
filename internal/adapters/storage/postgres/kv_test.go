package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*KVStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKVStore(db), mock
}

func TestKVStore_Get(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_entries WHERE key = $1`)).
		WithArgs("petclinic_pets_v1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

	v, ok, err := s.Get(context.Background(), "petclinic_pets_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Get_Missing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_entries WHERE key = $1`)).
		WithArgs("petclinic_theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := s.Get(context.Background(), "petclinic_theme")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Get_WrapsDriverError(t *testing.T) {
	s, mock := newMockStore(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_entries WHERE key = $1`)).
		WithArgs("k").
		WillReturnError(boom)

	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
}

func TestKVStore_Set_Upserts(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_entries (key, value, updated_at)`)).
		WithArgs("petclinic_theme", "dark", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "petclinic_theme", "dark"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Delete(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_entries WHERE key = $1`)).
		WithArgs("petclinic_pets_v1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "petclinic_pets_v1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_RejectsEmptyKey(t *testing.T) {
	s, _ := newMockStore(t)
	assert.ErrorIs(t, s.Set(context.Background(), "", "x"), ErrEmptyKey)
}
