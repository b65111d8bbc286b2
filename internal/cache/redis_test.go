package cache_test

import (
	"context"
	"testing"
	"time"

	"library/internal/cache"
	"library/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := cache.DialRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	_, err := store.Get(ctx, "users")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, store.Set(ctx, "users", []byte(`[{"name":"Alice"}]`), time.Hour))

	got, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Alice"}]`, string(got))
	assert.Equal(t, time.Hour, mr.TTL("users"))
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Set(ctx, "users:1", []byte(`{}`), time.Hour))
	mr.FastForward(time.Hour + time.Second)

	_, err := store.Get(ctx, "users:1")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestRedisStore_DeleteMany(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Set(ctx, "users", []byte(`[]`), time.Hour))
	require.NoError(t, store.Set(ctx, "users:5", []byte(`{}`), time.Hour))
	require.NoError(t, store.Set(ctx, "users:6", []byte(`{}`), time.Hour))

	require.NoError(t, store.Delete(ctx, "users", "users:5"))
	assert.False(t, mr.Exists("users"))
	assert.False(t, mr.Exists("users:5"))
	assert.True(t, mr.Exists("users:6"))

	assert.NoError(t, store.Delete(ctx))
}

func TestDialRedis_Errors(t *testing.T) {
	_, err := cache.DialRedis(context.Background(), "not a url")
	assert.Error(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()
	_, err = cache.DialRedis(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store, err := cache.New(ctx, &config.Config{CacheDriver: config.CacheRedis, RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &cache.RedisStore{}, store)
	store.(*cache.RedisStore).Close()

	store, err = cache.New(ctx, &config.Config{CacheDriver: config.CacheMemory, CacheTTL: time.Hour})
	require.NoError(t, err)
	assert.IsType(t, &cache.MemoryStore{}, store)

	store, err = cache.New(ctx, &config.Config{CacheDriver: config.CacheNone})
	require.NoError(t, err)
	assert.IsType(t, cache.NopStore{}, store)

	_, err = cache.New(ctx, &config.Config{CacheDriver: "memcached"})
	assert.Error(t, err)
}
