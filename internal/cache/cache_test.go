package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"library/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

// brokenStore fails every call, as an unreachable backend would.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenStore) Delete(context.Context, ...string) error {
	return errors.New("connection refused")
}

func TestGetOrFetch_HitReturnsStoredBytes(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(time.Minute)
	stored := `[{"name":"Alice","trang_thai":"active"}]`
	require.NoError(t, store.Set(ctx, "items", []byte(stored), time.Hour))

	got, err := cache.NewTyped[[]item](store, time.Hour).GetOrFetch(ctx, "items", func(context.Context) ([]item, error) {
		t.Fatal("fetch called on a hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, stored, string(got))
}

func TestGetOrFetch_MissThenHit(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(time.Minute)
	typed := cache.NewTyped[item](store, time.Hour)

	calls := 0
	fetch := func(context.Context) (item, error) {
		calls++
		return item{Name: "fresh"}, nil
	}

	got, err := typed.GetOrFetch(ctx, "k", fetch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"fresh"}`, string(got))

	raw, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, string(got), string(raw))

	got, err = typed.GetOrFetch(ctx, "k", fetch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"fresh"}`, string(got))
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_FetchErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(time.Minute)
	typed := cache.NewTyped[item](store, time.Hour)

	_, err := typed.GetOrFetch(ctx, "k", func(context.Context) (item, error) {
		return item{}, errors.New("db down")
	})
	assert.EqualError(t, err, "db down")

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestGetOrFetch_BrokenStoreFallsBack(t *testing.T) {
	typed := cache.NewTyped[item](brokenStore{}, time.Hour)

	got, err := typed.GetOrFetch(context.Background(), "k", func(context.Context) (item, error) {
		return item{Name: "from db"}, nil
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"from db"}`, string(got))
}

func TestMemoryStore_ExpiryAndDelete(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore(time.Minute)

	require.NoError(t, store.Set(ctx, "short", []byte("1"), 10*time.Millisecond))
	require.NoError(t, store.Set(ctx, "a", []byte("2"), time.Hour))
	require.NoError(t, store.Set(ctx, "b", []byte("3"), time.Hour))

	time.Sleep(20 * time.Millisecond)
	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, store.Delete(ctx, "a", "b"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrMiss)
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "users", cache.UsersKey)
	assert.Equal(t, "users:5", cache.UserKey(5))
	assert.Equal(t, "users:2147483647", cache.UserKey(2147483647))
}

func TestNopStore(t *testing.T) {
	ctx := context.Background()
	var store cache.Store = cache.NopStore{}
	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Hour))
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
	assert.NoError(t, store.Delete(ctx, "k"))
}
