package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-manager/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) (adapter.QueryCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisQueryCache(client, time.Minute), server
}

func TestRedisQueryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	userID := uuid.New()

	_, gen, found, err := c.Get(ctx, userID, adapter.TableCategories, "list")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, c.Set(ctx, userID, adapter.TableCategories, gen, "list", []byte(`[1,2]`)))

	payload, _, found, err := c.Get(ctx, userID, adapter.TableCategories, "list")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1,2]`, string(payload))

	_, _, found, err = c.Get(ctx, uuid.New(), adapter.TableCategories, "list")
	require.NoError(t, err)
	assert.False(t, found, "entries are scoped per user")
}

func TestRedisQueryCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, adapter.TableCategories, 0, "list", []byte("a")))
	require.NoError(t, c.Set(ctx, userID, adapter.TableAssets, 0, "list", []byte("b")))

	require.NoError(t, c.Invalidate(ctx, userID, adapter.TableCategories))

	_, gen, found, err := c.Get(ctx, userID, adapter.TableCategories, "list")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(1), gen)

	_, _, found, err = c.Get(ctx, userID, adapter.TableAssets, "list")
	require.NoError(t, err)
	assert.True(t, found, "other tables keep their entries")

	require.NoError(t, c.Set(ctx, userID, adapter.TableCategories, gen, "list", []byte("c")))
	payload, _, found, err := c.Get(ctx, userID, adapter.TableCategories, "list")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "c", string(payload))

	require.NoError(t, c.Invalidate(ctx, userID, adapter.AllTables...))
	_, _, found, err = c.Get(ctx, userID, adapter.TableAssets, "list")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisQueryCacheSetUsesObservedGeneration(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	userID := uuid.New()

	// Lookup, then a mutation lands before the loaded rows are stored.
	_, gen, found, err := c.Get(ctx, userID, adapter.TableFocusTasks, "all")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Invalidate(ctx, userID, adapter.TableFocusTasks))
	require.NoError(t, c.Set(ctx, userID, adapter.TableFocusTasks, gen, "all", []byte(`["old"]`)))

	_, current, found, err := c.Get(ctx, userID, adapter.TableFocusTasks, "all")
	require.NoError(t, err)
	assert.False(t, found, "rows loaded before the invalidation must not be served")
	assert.Equal(t, gen+1, current)
}

func TestRedisQueryCacheExpires(t *testing.T) {
	ctx := context.Background()
	c, server := newTestCache(t)
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, adapter.TableFocusTasks, 0, "all", []byte("x")))
	server.FastForward(2 * time.Minute)

	_, _, found, err := c.Get(ctx, userID, adapter.TableFocusTasks, "all")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisQueryCacheUnavailable(t *testing.T) {
	ctx := context.Background()
	c, server := newTestCache(t)
	server.Close()

	_, _, _, err := c.Get(ctx, uuid.New(), adapter.TableCategories, "list")
	assert.Error(t, err)
	assert.Error(t, c.Invalidate(ctx, uuid.New(), adapter.TableCategories))
}

func TestNoopQueryCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopQueryCache()
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, adapter.TableCategories, 0, "list", []byte("a")))
	_, _, found, err := c.Get(ctx, userID, adapter.TableCategories, "list")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Invalidate(ctx, userID, adapter.AllTables...))
}
