// Package store provides the durable user session store. Every mutation is
// persisted to stable storage so sessions survive process restarts.
package store

import (
	"context"
	"errors"

	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

// ErrNotFound is returned by Get when no session exists for a user.
var ErrNotFound = errors.New("session not found")

// Store is a durable mapping from user id to session state. Implementations
// persist on every mutation; Delete of an absent session is a no-op.
type Store interface {
	Get(ctx context.Context, userID int64) (sessionpkg.Session, error)
	Set(ctx context.Context, userID int64, s sessionpkg.Session) error
	Delete(ctx context.Context, userID int64) error

	// All returns a snapshot of every stored session, keyed by user id.
	All(ctx context.Context) (map[int64]sessionpkg.Session, error)

	Close() error
}
