// Package cache implements the key-value cache that sits in front of user
// reads. Backends store raw bytes; Typed encodes values as JSON when filling
// an entry and returns entries as stored.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Store is a key-value store with per-entry expiration.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// FetchFn loads a value from the source of truth on a cache miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Typed is a Store view filled with values of a single type. Reads hand back
// the stored bytes untouched so a hit is served verbatim.
type Typed[T any] struct {
	store Store
	ttl   time.Duration
}

// NewTyped returns a typed view over store. Entries written through it
// expire after ttl.
func NewTyped[T any](store Store, ttl time.Duration) *Typed[T] {
	return &Typed[T]{store: store, ttl: ttl}
}

// GetOrFetch returns the payload stored under key exactly as it was stored.
// On a miss it calls fetch, caches the JSON encoding of the result and
// returns that encoding. Cache errors are logged and treated as misses; only
// fetch and encode errors are returned.
func (c *Typed[T]) GetOrFetch(ctx context.Context, key string, fetch FetchFn[T]) (json.RawMessage, error) {
	raw, err := c.store.Get(ctx, key)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, ErrMiss) {
		log.Printf("Cache read of %s failed, falling back to database: %v", key, err)
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	raw, err = json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("cache encode %s: %w", key, err)
	}

	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		log.Printf("Cache write of %s failed: %v", key, err)
	}
	return raw, nil
}
