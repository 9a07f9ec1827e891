// Package redis stores records as plain string keys in Redis.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baharkarakas/mindbank/internal/repository"
)

const defaultPrefix = "mindbank:"

// Store is a Redis-backed repository.Records. Keys never expire.
type Store struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
	now    func() time.Time
}

func New(client *redis.Client, prefix string, log *slog.Logger) *Store {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{client: client, prefix: prefix, log: log, now: time.Now}
}

func (s *Store) key(k string) string { return s.prefix + k }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		s.log.ErrorContext(ctx, "failed to get record from redis", "key", key, "error", err)
		return nil, err
	}
	return b, nil
}

func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	if err := s.client.Set(ctx, s.key(key), payload, 0).Err(); err != nil {
		s.log.ErrorContext(ctx, "failed to save record in redis", "key", key, "error", err)
		return err
	}
	return nil
}

// Quarantine renames the key to <key>.backup.<timestamp>.
func (s *Store) Quarantine(ctx context.Context, key string) (string, error) {
	backup := repository.BackupName(s.key(key), s.now().UTC())
	if err := s.client.Rename(ctx, s.key(key), backup).Err(); err != nil {
		// Redis reports a missing source key as "ERR no such key".
		if exists, xerr := s.client.Exists(ctx, s.key(key)).Result(); xerr == nil && exists == 0 {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return backup, nil
}

// Ping reports whether the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
