package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_states.json")
	return NewFileStore(path, zap.NewNop().Sugar()), path
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestFileStore(t)

	_, err := s.Get(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)

	want := sessionpkg.Session{
		Mode:      sessionpkg.ModeVoice,
		Direction: &sessionpkg.Direction{Source: "uz", Target: "ru"},
	}
	require.NoError(t, s.Set(ctx, 42, want))

	got, err := s.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, s.Delete(ctx, 42))
	_, err = s.Get(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDeleteMissingIsNoop(t *testing.T) {
	t.Parallel()

	s, _ := newTestFileStore(t)
	require.NoError(t, s.Delete(context.Background(), 7))
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, path := newTestFileStore(t)

	require.NoError(t, s.Set(ctx, 1, sessionpkg.Session{Mode: sessionpkg.ModeText}))
	require.NoError(t, s.Set(ctx, 2, sessionpkg.Session{
		Mode:      sessionpkg.ModePhoto,
		Direction: &sessionpkg.Direction{Source: "en", Target: "uz"},
	}))

	reloaded := NewFileStore(path, zap.NewNop().Sugar())
	all, err := reloaded.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, sessionpkg.ModeText, all[1].Mode)
	require.NotNil(t, all[2].Direction)
	require.Equal(t, "uz", all[2].Direction.Target)
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	s := NewFileStore(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop().Sugar())
	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "user_states.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0o644))

	s := NewFileStore(path, zap.NewNop().Sugar())
	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestFileStoreUnknownVersionStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "user_states.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"sessions":{"1":{"mode":"text"}}}`), 0o644))

	s := NewFileStore(path, zap.NewNop().Sugar())
	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}
