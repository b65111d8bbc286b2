package cache

import (
	"context"
	"fmt"
	"time"

	"library/internal/config"
)

// NopStore never holds anything; every Get is a miss.
type NopStore struct{}

func (NopStore) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (NopStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NopStore) Delete(context.Context, ...string) error { return nil }

// New builds the Store selected by cfg.CacheDriver.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.CacheDriver {
	case config.CacheRedis:
		store, err := DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.CacheMemory:
		return NewMemoryStore(cfg.CacheTTL), nil
	case config.CacheNone:
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.CacheDriver)
	}
}
