package readthrough

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
)

type memoryCache struct {
	entries     map[string][]byte
	generations map[string]int64
	failGet     bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, generations: map[string]int64{}}
}

func entryKey(userID uuid.UUID, table string, generation int64, key string) string {
	return userID.String() + ":" + table + ":" + strconv.FormatInt(generation, 10) + ":" + key
}

func (c *memoryCache) Get(_ context.Context, userID uuid.UUID, table, key string) ([]byte, int64, bool, error) {
	if c.failGet {
		return nil, 0, false, errors.New("connection refused")
	}
	gen := c.generations[userID.String()+table]
	v, ok := c.entries[entryKey(userID, table, gen, key)]
	return v, gen, ok, nil
}

func (c *memoryCache) Set(_ context.Context, userID uuid.UUID, table string, generation int64, key string, payload []byte) error {
	c.entries[entryKey(userID, table, generation, key)] = payload
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, userID uuid.UUID, tables ...string) error {
	for _, t := range tables {
		c.generations[userID.String()+t]++
	}
	return nil
}

type row struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("second read is served from cache", func(t *testing.T) {
		cache := newMemoryCache()
		calls := 0
		load := func(context.Context) ([]row, error) {
			calls++
			return []row{{Name: "a", Value: calls}}, nil
		}

		first, err := Load(ctx, cache, userID, "focus_tasks", "all", load)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Load(ctx, cache, userID, "focus_tasks", "all", load)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if calls != 1 {
			t.Errorf("expected 1 load, got %d", calls)
		}
		if second[0].Value != first[0].Value {
			t.Errorf("expected cached value %d, got %d", first[0].Value, second[0].Value)
		}
	})

	t.Run("invalidation forces a reload", func(t *testing.T) {
		cache := newMemoryCache()
		calls := 0
		load := func(context.Context) (int, error) {
			calls++
			return calls, nil
		}

		_, _ = Load(ctx, cache, userID, "assets", "all", load)
		Invalidate(ctx, cache, userID, "assets")
		got, _ := Load(ctx, cache, userID, "assets", "all", load)

		if calls != 2 {
			t.Errorf("expected 2 loads, got %d", calls)
		}
		if got != 2 {
			t.Errorf("expected fresh value 2, got %d", got)
		}
	})

	t.Run("invalidation during a load keeps the loaded rows out of the cache", func(t *testing.T) {
		cache := newMemoryCache()

		// A write commits while the read is still running.
		stale, err := Load(ctx, cache, userID, "focus_tasks", "all", func(ctx context.Context) ([]string, error) {
			Invalidate(ctx, cache, userID, "focus_tasks")
			return []string{"old"}, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stale) != 1 || stale[0] != "old" {
			t.Fatalf("expected the in-flight result to be returned, got %v", stale)
		}

		fresh, err := Load(ctx, cache, userID, "focus_tasks", "all", func(context.Context) ([]string, error) {
			return []string{"new"}, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fresh) != 1 || fresh[0] != "new" {
			t.Errorf("read after invalidation returned %v, expected [new]", fresh)
		}
	})

	t.Run("generations past nine stay distinct", func(t *testing.T) {
		cache := newMemoryCache()
		calls := 0
		load := func(context.Context) (int, error) {
			calls++
			return calls, nil
		}

		for i := 0; i < 12; i++ {
			_, _ = Load(ctx, cache, userID, "assets", "all", load)
			Invalidate(ctx, cache, userID, "assets")
		}
		got, _ := Load(ctx, cache, userID, "assets", "all", load)

		if calls != 13 {
			t.Errorf("expected 13 loads, got %d", calls)
		}
		if got != 13 {
			t.Errorf("expected fresh value 13, got %d", got)
		}
	})

	t.Run("other tables keep their entries", func(t *testing.T) {
		cache := newMemoryCache()
		calls := 0
		load := func(context.Context) (int, error) {
			calls++
			return calls, nil
		}

		_, _ = Load(ctx, cache, userID, "categories", "all", load)
		Invalidate(ctx, cache, userID, "transactions")
		_, _ = Load(ctx, cache, userID, "categories", "all", load)

		if calls != 1 {
			t.Errorf("expected 1 load, got %d", calls)
		}
	})

	t.Run("cache failure falls back to load", func(t *testing.T) {
		cache := newMemoryCache()
		cache.failGet = true

		got, err := Load(ctx, cache, userID, "assets", "all", func(context.Context) (string, error) {
			return "direct", nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "direct" {
			t.Errorf("expected direct, got %q", got)
		}
		if len(cache.entries) != 0 {
			t.Errorf("expected nothing cached without a known generation, got %d entries", len(cache.entries))
		}
	})

	t.Run("load errors are returned and not cached", func(t *testing.T) {
		cache := newMemoryCache()
		wantErr := errors.New("db down")

		_, err := Load(ctx, cache, userID, "assets", "all", func(context.Context) (int, error) {
			return 0, wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
		if len(cache.entries) != 0 {
			t.Errorf("expected no cached entries, got %d", len(cache.entries))
		}
	})

	t.Run("nil cache loads directly", func(t *testing.T) {
		got, err := Load(ctx, nil, userID, "assets", "all", func(context.Context) (int, error) {
			return 7, nil
		})
		if err != nil || got != 7 {
			t.Errorf("expected 7, got %d (%v)", got, err)
		}
	})
}
