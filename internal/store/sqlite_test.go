package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestSQLiteStore(t)

	_, err := s.Get(ctx, 10)
	require.ErrorIs(t, err, ErrNotFound)

	want := sessionpkg.Session{
		Mode:      sessionpkg.ModeVideo,
		Direction: &sessionpkg.Direction{Source: "ru", Target: "en"},
	}
	require.NoError(t, s.Set(ctx, 10, want))

	got, err := s.Get(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Upsert replaces the previous row.
	require.NoError(t, s.Set(ctx, 10, sessionpkg.Session{Mode: sessionpkg.ModeText}))
	got, err = s.Get(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, sessionpkg.ModeText, got.Mode)
	require.Nil(t, got.Direction)
}

func TestSQLiteStoreDeleteMissingIsNoop(t *testing.T) {
	t.Parallel()

	s := newTestSQLiteStore(t)
	require.NoError(t, s.Delete(context.Background(), 999))
}

func TestSQLiteStoreAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Set(ctx, 1, sessionpkg.Session{Mode: sessionpkg.ModeVoice}))
	require.NoError(t, s.Set(ctx, 2, sessionpkg.Session{
		Mode:      sessionpkg.ModePhoto,
		Direction: &sessionpkg.Direction{Source: "uz", Target: "en"},
	}))

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, sessionpkg.ModeVoice, all[1].Mode)
	require.Equal(t, "en", all[2].Direction.Target)
}
