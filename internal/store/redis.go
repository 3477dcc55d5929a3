package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	sessionpkg "github.com/descarado10/Bot-translator/internal/session"
)

const sessionKeyPrefix = "bot:session:"

// RedisStore persists each session as a JSON value under bot:session:<id>.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the redis server at addr and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func sessionKey(userID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(userID, 10)
}

func (s *RedisStore) Get(ctx context.Context, userID int64) (sessionpkg.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return sessionpkg.Session{}, ErrNotFound
		}
		return sessionpkg.Session{}, fmt.Errorf("get session: %w", err)
	}

	var sess sessionpkg.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return sessionpkg.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Set(ctx context.Context, userID int64, sess sessionpkg.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) All(ctx context.Context) (map[int64]sessionpkg.Session, error) {
	out := make(map[int64]sessionpkg.Session)

	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		userID, err := strconv.ParseInt(strings.TrimPrefix(key, sessionKeyPrefix), 10, 64)
		if err != nil {
			continue
		}
		sess, err := s.Get(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out[userID] = sess
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}
	return out, nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
