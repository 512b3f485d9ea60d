// Package readthrough serves repository reads through the query cache.
package readthrough

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
)

// Load returns the cached result for (user, table, key) or calls load and
// stores its result. Cache failures are logged and never returned.
//
// The result is stored under the generation observed before load ran, so an
// Invalidate that happens while load is in flight leaves it unreachable.
func Load[T any](
	ctx context.Context,
	cache adapter.QueryCache,
	userID uuid.UUID,
	table, key string,
	load func(ctx context.Context) (T, error),
) (T, error) {
	if cache == nil {
		return load(ctx)
	}

	payload, generation, found, err := cache.Get(ctx, userID, table, key)
	if err != nil {
		// Without a known generation the result cannot be stored safely
		slog.Debug("Query cache read failed", "table", table, "key", key, "error", err)
		return load(ctx)
	}
	if found {
		var cached T
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		slog.Debug("Discarding undecodable cache entry", "table", table, "key", key)
	}

	result, err := load(ctx)
	if err != nil {
		return result, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		slog.Debug("Query result not cacheable", "table", table, "error", err)
		return result, nil
	}
	if err := cache.Set(ctx, userID, table, generation, key, encoded); err != nil {
		slog.Debug("Query cache write failed", "table", table, "key", key, "error", err)
	}

	return result, nil
}

// Invalidate marks the given tables stale for the user after a mutation.
func Invalidate(ctx context.Context, cache adapter.QueryCache, userID uuid.UUID, tables ...string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID, tables...); err != nil {
		slog.Warn("Failed to invalidate query cache", "userID", userID, "tables", tables, "error", err)
	}
}
