package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakovaleva/blogview/internal/client/models"
	"github.com/annakovaleva/blogview/internal/client/store"
	"github.com/annakovaleva/blogview/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func TestSessionRecord_WriteThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	rec := NewSessionRecord(repo, discardLogger())

	sessions := store.NewSessionStore()
	sessions.Subscribe(rec.Listener())

	user := &models.User{ID: 1, Name: "ann", Email: "ann@example.com", Username: "ann"}
	sessions.Set(user, "tok-1")

	loaded, err := rec.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Authenticated)
	assert.Equal(t, "tok-1", loaded.Token)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "ann", loaded.User.Name)
}

func TestSessionRecord_ClearRemovesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	rec := NewSessionRecord(repo, discardLogger())

	sessions := store.NewSessionStore()
	sessions.Subscribe(rec.Listener())

	sessions.Set(&models.User{ID: 1, Name: "ann"}, "tok-1")
	sessions.Clear()

	loaded, err := rec.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionRecord_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	rec := NewSessionRecord(repo, discardLogger())

	first := store.NewSessionStore()
	first.Subscribe(rec.Listener())
	first.Set(&models.User{ID: 7, Name: "Ann"}, "tok-7")

	// A fresh store, as after a process restart, rehydrates the same state.
	second := store.NewSessionStore()
	require.NoError(t, second.Rehydrate(ctx, rec))

	assert.True(t, second.Authenticated())
	assert.Equal(t, "tok-7", second.Token())
}

func TestThemeRecord_WriteThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	rec := NewThemeRecord(repo, discardLogger())

	themes := store.NewThemeStore()
	themes.Subscribe(rec.Listener())
	themes.Toggle() // light -> dark

	loaded, err := rec.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.ThemeDark, loaded)
}

func TestThemeRecord_LoadWithoutRecord(t *testing.T) {
	rec := NewThemeRecord(NewSQLiteRepository(setupDB(t)), discardLogger())

	loaded, err := rec.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
