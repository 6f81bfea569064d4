package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:recordstest?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Memory databases are shared between tests in this package; start clean.
	_, err = db.Exec(`DELETE FROM records`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "session-storage", []byte(`{"token":"t"}`)))

	got, err := repo.Get(ctx, "session-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"token":"t"}`), got)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "theme-storage", []byte("light")))
	require.NoError(t, repo.Set(ctx, "theme-storage", []byte("dark")))

	got, err := repo.Get(ctx, "theme-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), got)
}

func TestSQLiteRepository_GetMissingReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "session-storage", []byte("x")))
	require.NoError(t, repo.Delete(ctx, "session-storage"))

	got, err := repo.Get(ctx, "session-storage")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is harmless.
	require.NoError(t, repo.Delete(ctx, "session-storage"))
}

func TestSQLiteRepository_NamespacesAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "session-storage", []byte("s")))
	require.NoError(t, repo.Set(ctx, "theme-storage", []byte("t")))
	require.NoError(t, repo.Delete(ctx, "session-storage"))

	got, err := repo.Get(ctx, "theme-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte("t"), got)
}

func TestSQLiteRepository_ErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk gone")
	mock.ExpectQuery(`SELECT value FROM records`).WillReturnError(boom)
	mock.ExpectExec(`INSERT INTO records`).WillReturnError(boom)
	mock.ExpectExec(`DELETE FROM records`).WillReturnError(boom)

	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err = repo.Get(ctx, "x")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.Set(ctx, "x", nil), boom)
	assert.ErrorIs(t, repo.Delete(ctx, "x"), boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
