package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

const createSessionTableSQL = `CREATE TABLE IF NOT EXISTS user_session (
	user_id INTEGER PRIMARY KEY,
	mode    TEXT NOT NULL,
	source  TEXT,
	target  TEXT
)`

// SQLiteStore persists sessions in a local sqlite database, one row per user.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// session table exists.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createSessionTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure session table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, userID int64) (sessionpkg.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT mode, source, target FROM user_session WHERE user_id = ?`, userID)

	var mode string
	var source, target sql.NullString
	if err := row.Scan(&mode, &source, &target); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sessionpkg.Session{}, ErrNotFound
		}
		return sessionpkg.Session{}, fmt.Errorf("query session: %w", err)
	}

	sess := sessionpkg.Session{Mode: sessionpkg.Mode(mode)}
	if source.Valid && target.Valid {
		sess.Direction = &sessionpkg.Direction{Source: source.String, Target: target.String}
	}
	return sess, nil
}

func (s *SQLiteStore) Set(ctx context.Context, userID int64, sess sessionpkg.Session) error {
	var source, target sql.NullString
	if sess.Direction != nil {
		source = sql.NullString{String: sess.Direction.Source, Valid: true}
		target = sql.NullString{String: sess.Direction.Target, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_session (user_id, mode, source, target) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   mode=excluded.mode, source=excluded.source, target=excluded.target`,
		userID, string(sess.Mode), source, target)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM user_session WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) All(ctx context.Context) (map[int64]sessionpkg.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id, mode, source, target FROM user_session`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]sessionpkg.Session)
	for rows.Next() {
		var userID int64
		var mode string
		var source, target sql.NullString
		if err := rows.Scan(&userID, &mode, &source, &target); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess := sessionpkg.Session{Mode: sessionpkg.Mode(mode)}
		if source.Valid && target.Valid {
			sess.Direction = &sessionpkg.Direction{Source: source.String, Target: target.String}
		}
		out[userID] = sess
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
