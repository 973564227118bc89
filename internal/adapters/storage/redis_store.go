// Package storage provides the durable key-value adapter behind the
// session and preference stores. Redis plays the role the browser's
// localStorage played: small string values, always assumed reachable.
package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

type RedisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// Ensure RedisStore implements ports.KeyValueStore
var _ ports.KeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, logger zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger.With().Str("component", "redis_store").Logger(),
	}
}

// Get degrades to absent on any failure: the store contract has no error
// surface, and a missing preference just means its default applies.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("get failed")
		return "", false
	}
	return value, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("set failed")
	}
}

// Delete removes all keys with a single DEL, which Redis executes
// atomically: no reader sees some of the keys gone and others not.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn().Err(err).Strs("keys", keys).Msg("delete failed")
	}
}
