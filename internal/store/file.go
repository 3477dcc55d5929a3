package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.uber.org/zap"

	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

const fileFormatVersion = 1

// persistedState is the on-disk layout. The version field guards against
// silently misreading a future schema.
type persistedState struct {
	Version  int                           `json:"version"`
	Sessions map[string]sessionpkg.Session `json:"sessions"`
}

// FileStore keeps sessions in memory and writes the whole map to a JSON file
// on every mutation. A missing file means an empty store; an unreadable or
// mismatched file degrades to an empty store with a warning instead of
// failing startup.
type FileStore struct {
	path   string
	logger *zap.SugaredLogger

	mu       sync.Mutex
	sessions map[int64]sessionpkg.Session
}

// NewFileStore loads the state file at path, creating an empty store when the
// file does not exist.
func NewFileStore(path string, logger *zap.SugaredLogger) *FileStore {
	s := &FileStore{
		path:     path,
		logger:   logger,
		sessions: make(map[int64]sessionpkg.Session),
	}
	s.load()
	return s
}

func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnw("failed to read state file, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warnw("failed to decode state file, starting empty", "path", s.path, "error", err)
		return
	}
	if state.Version != fileFormatVersion {
		s.logger.Warnw("unsupported state file version, starting empty", "path", s.path, "version", state.Version)
		return
	}

	for key, sess := range state.Sessions {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			s.logger.Warnw("skipping state entry with invalid user id", "key", key)
			continue
		}
		s.sessions[id] = sess
	}
}

func (s *FileStore) Get(_ context.Context, userID int64) (sessionpkg.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return sessionpkg.Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *FileStore) Set(_ context.Context, userID int64, sess sessionpkg.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = sess
	return s.persistLocked()
}

func (s *FileStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; !ok {
		return nil
	}
	delete(s.sessions, userID)
	return s.persistLocked()
}

func (s *FileStore) All(_ context.Context) (map[int64]sessionpkg.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64]sessionpkg.Session, len(s.sessions))
	for id, sess := range s.sessions {
		out[id] = sess
	}
	return out, nil
}

func (s *FileStore) Close() error { return nil }

// persistLocked writes the full session map via a temp file and rename so a
// crash mid-write never leaves a truncated state file. Persistence failures
// are logged, not returned: durability is best-effort and processing
// continues on the in-memory state.
func (s *FileStore) persistLocked() error {
	state := persistedState{
		Version:  fileFormatVersion,
		Sessions: make(map[string]sessionpkg.Session, len(s.sessions)),
	}
	for id, sess := range s.sessions {
		state.Sessions[strconv.FormatInt(id, 10)] = sess
	}

	data, err := json.Marshal(state)
	if err != nil {
		s.logger.Errorw("failed to encode state", "error", err)
		return nil
	}

	if err := s.writeAtomic(data); err != nil {
		s.logger.Errorw("failed to persist state", "path", s.path, "error", err)
	}
	return nil
}

func (s *FileStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
