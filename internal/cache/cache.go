// Package cache wraps Redis for read-through caching and idempotency keys.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache stores string values in Redis.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get returns the cached value and whether it was present.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

// SetNX stores value only when key is absent and reports whether it did.
func (c *RedisCache) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key, value, ttl).Result()
}

// NopCache is used when Redis is not configured. Every lookup misses and
// every SetNX succeeds.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, bool, error)                 { return "", false, nil }
func (NopCache) Set(context.Context, string, string, time.Duration) error          { return nil }
func (NopCache) Del(context.Context, ...string) error                              { return nil }
func (NopCache) SetNX(context.Context, string, string, time.Duration) (bool, error) { return true, nil }
