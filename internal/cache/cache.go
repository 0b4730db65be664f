// Package cache provides the non-authoritative dedup fast path in front of
// the webhook ledger. The ledger's unique constraint remains the source of
// truth; a cache miss only costs one extra database round trip.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string) error
	Invalidate(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCache{
		client: client,
		prefix: "webhook:processed:",
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (bool, error) {
	_, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get: %w", err)
	}
	return true, nil
}

func (c *RedisCache) Put(ctx context.Context, key string) error {
	if err := c.client.Set(ctx, c.prefix+key, "1", c.ttl).Err(); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// NoopCache disables the fast path; every dedup check goes to the ledger.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) (bool, error) { return false, nil }
func (NoopCache) Put(ctx context.Context, key string) error         { return nil }
func (NoopCache) Invalidate(ctx context.Context, key string) error  { return nil }
