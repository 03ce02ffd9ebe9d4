package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Client {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSQLiteCache_SetGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	body := []byte(`<entry xmlns="http://www.w3.org/2005/Atom"><id>1</id></entry>`)
	require.NoError(t, cache.Set(ctx, "gbase:/base/feeds/items/1", body, time.Hour))

	got, err := cache.Get(ctx, "gbase:/base/feeds/items/1")
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestSQLiteCache_Get_Missing(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSQLiteCache_Expiry(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", []byte("value"), 10*time.Millisecond))
	require.NoError(t, cache.Set(ctx, "forever", []byte("value"), 0))

	time.Sleep(20 * time.Millisecond)

	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err := cache.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "value", string(got))

	stats, err := cache.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats["total_entries"])
	assert.Equal(t, 1, stats["expired_entries"])

	cache.cleanup()

	stats, err = cache.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats["total_entries"])
}

func TestSQLiteCache_Overwrite(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", []byte("first"), time.Hour))
	require.NoError(t, cache.Set(ctx, "key", []byte("second"), time.Hour))

	got, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestSQLiteCache_DeleteAndClear(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Hour))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Hour))

	require.NoError(t, cache.Delete(ctx, "a"))
	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSQLiteCache_DeletePrefix(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "gbase:/items/1", []byte("1"), time.Hour))
	require.NoError(t, cache.Set(ctx, "gbase:/items/1?alt=atom", []byte("2"), time.Hour))
	require.NoError(t, cache.Set(ctx, "gbase:/items%", []byte("3"), time.Hour))

	require.NoError(t, cache.DeletePrefix(ctx, "gbase:/items/1"))

	_, err := cache.Get(ctx, "gbase:/items/1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = cache.Get(ctx, "gbase:/items/1?alt=atom")
	assert.ErrorIs(t, err, ErrCacheMiss)

	kept, err := cache.Get(ctx, "gbase:/items%")
	require.NoError(t, err)
	assert.Equal(t, "3", string(kept))
}

func TestSQLiteCache_Validation(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	assert.Error(t, cache.Set(ctx, "", []byte("v"), time.Hour))
	assert.Error(t, cache.Set(ctx, "key", nil, time.Hour))
	_, err := cache.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, cache.Delete(ctx, ""))
}

func TestSQLiteCache_KeysAreParameterised(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	hostile := []string{
		"key'; DROP TABLE cache; --",
		"key' OR '1'='1",
		"/base/feeds/snippets?bq=digital+camera&max-results=25",
	}

	for _, key := range hostile {
		require.NoError(t, cache.Set(ctx, key, []byte(key), time.Hour))
	}
	for _, key := range hostile {
		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, key, string(got))
	}

	stats, err := cache.Stats()
	require.NoError(t, err)
	assert.Equal(t, len(hostile), stats["total_entries"])
}

func TestSQLiteCache_CloseIsIdempotentForCleanup(t *testing.T) {
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), time.Minute)
	require.NoError(t, err)

	require.NoError(t, cache.Close())
	// a second Close must not panic on the stop channel
	assert.NotPanics(t, func() { _ = cache.Close() })
}
