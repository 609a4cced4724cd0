// Package redissvc wraps the redis client used for the dashboard
// overview cache, refresh tokens and the restock event log.
package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a cached key does not exist.
var ErrCacheMiss = errors.New("cache miss")

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

// GetJSON loads a cached value into dest. Missing keys surface as
// ErrCacheMiss so callers can fall through to a fresh computation.
func (s *RedisService) GetJSON(key string, dest any) error {
	data, err := s.rdb.Get(s.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetJSON caches a value under key for ttl.
func (s *RedisService) SetJSON(key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(s.ctx, key, data, ttl).Err()
}

// Invalidate drops cached keys. Callers invalidate explicitly on every
// write; nothing below the HTTP layer ever caches.
func (s *RedisService) Invalidate(keys ...string) error {
	return s.rdb.Del(s.ctx, keys...).Err()
}
