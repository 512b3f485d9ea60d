// Package cache implements the per-user query cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/life-manager/backend/internal/application/adapter"
)

const keyPrefix = "lm"

// redisQueryCache stores query results under a per-user, per-table
// generation. Invalidation increments the generation so older entries are
// never read again and expire on their TTL.
type redisQueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisQueryCache creates a Redis backed adapter.QueryCache.
func NewRedisQueryCache(client *redis.Client, ttl time.Duration) adapter.QueryCache {
	return &redisQueryCache{client: client, ttl: ttl}
}

func generationKey(userID uuid.UUID, table string) string {
	return fmt.Sprintf("%s:%s:%s:gen", keyPrefix, userID, table)
}

func entryKey(userID uuid.UUID, table string, generation int64, key string) string {
	return fmt.Sprintf("%s:%s:%s:%d:%s", keyPrefix, userID, table, generation, key)
}

func (c *redisQueryCache) generation(ctx context.Context, userID uuid.UUID, table string) (int64, error) {
	raw, err := c.client.Get(ctx, generationKey(userID, table)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Get returns the cached payload, the generation it was looked up under and
// whether it was found.
func (c *redisQueryCache) Get(ctx context.Context, userID uuid.UUID, table, key string) ([]byte, int64, bool, error) {
	gen, err := c.generation(ctx, userID, table)
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to read cache generation: %w", err)
	}

	payload, err := c.client.Get(ctx, entryKey(userID, table, gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return payload, gen, true, nil
}

// Set stores the payload under the given generation. The generation is not
// re-read here: a result loaded across an invalidation must not become
// visible under the new generation.
func (c *redisQueryCache) Set(ctx context.Context, userID uuid.UUID, table string, generation int64, key string, payload []byte) error {
	if err := c.client.Set(ctx, entryKey(userID, table, generation, key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Invalidate bumps the generation of the given tables in one round trip.
func (c *redisQueryCache) Invalidate(ctx context.Context, userID uuid.UUID, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	// MULTI/EXEC so every table moves to its next generation together
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, table := range tables {
			pipe.Incr(ctx, generationKey(userID, table))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// noopQueryCache never stores anything.
type noopQueryCache struct{}

// NewNoopQueryCache returns a cache that always misses. It is used when
// Redis is not configured.
func NewNoopQueryCache() adapter.QueryCache {
	return noopQueryCache{}
}

func (noopQueryCache) Get(context.Context, uuid.UUID, string, string) ([]byte, int64, bool, error) {
	return nil, 0, false, nil
}

func (noopQueryCache) Set(context.Context, uuid.UUID, string, int64, string, []byte) error {
	return nil
}

func (noopQueryCache) Invalidate(context.Context, uuid.UUID, ...string) error {
	return nil
}
