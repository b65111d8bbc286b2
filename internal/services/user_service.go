package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"library/internal/cache"
	"library/internal/models"
	"library/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// UserService serves user reads through the cache and invalidates cached
// entries on every write.
//
// Handlers validate the request before calling a write, so the connection
// for the mutation is only checked out once the body has been accepted.
//
// Writes run the database mutation and the invalidation concurrently, so a
// read racing a write can still be answered from the old entry. Once both
// have finished the next read misses and repopulates. A failed invalidation
// is only logged; the entry then lives until its TTL runs out.
type UserService struct {
	repo  repositories.UserRepository
	store cache.Store
	list  *cache.Typed[[]models.User]
	items *cache.Typed[models.User]
	pub   EventPublisher
}

// NewUserService creates a new UserService. Entries expire after ttl; pub may
// be nil.
func NewUserService(repo repositories.UserRepository, store cache.Store, ttl time.Duration, pub EventPublisher) *UserService {
	return &UserService{
		repo:  repo,
		store: store,
		list:  cache.NewTyped[[]models.User](store, ttl),
		items: cache.NewTyped[models.User](store, ttl),
		pub:   pub,
	}
}

// GetAllUsers returns the user list as encoded JSON. A cached list is
// returned exactly as stored; on a miss it is loaded and cached.
func (s *UserService) GetAllUsers(ctx context.Context) (json.RawMessage, error) {
	return s.list.GetOrFetch(ctx, cache.UsersKey, s.repo.GetAll)
}

// GetUserByID returns one user as encoded JSON, served from the cache the
// same way as GetAllUsers. A missing user is encoded as {}, and that result
// is cached too.
func (s *UserService) GetUserByID(ctx context.Context, id int32) (json.RawMessage, error) {
	return s.items.GetOrFetch(ctx, cache.UserKey(id), func(ctx context.Context) (models.User, error) {
		user, err := s.repo.GetByID(ctx, id)
		if err != nil || user == nil {
			return models.User{}, err
		}
		return *user, nil
	})
}

// CreateUser inserts a user and drops the cached list. Per-id entries cannot
// refer to an id that did not exist yet, so they are left alone.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, user)
	}, cache.UsersKey)
	if err != nil {
		return err
	}
	publishEvent(s.pub, EventUserCreated, map[string]any{"id": user.ID, "email": user.Email})
	return nil
}

// UpdateUser replaces a user and drops both the cached list and its entry.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, user)
	}, cache.UsersKey, cache.UserKey(user.ID))
	if err != nil {
		return err
	}
	publishEvent(s.pub, EventUserUpdated, map[string]any{"id": user.ID})
	return nil
}

// DeleteUser removes a user and drops both the cached list and its entry.
func (s *UserService) DeleteUser(ctx context.Context, id int32) error {
	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	}, cache.UsersKey, cache.UserKey(id))
	if err != nil {
		return err
	}
	publishEvent(s.pub, EventUserDeleted, map[string]any{"id": id})
	return nil
}

// mutate issues write and the deletion of keys without ordering them and
// waits for both. Only the write's error is returned.
func (s *UserService) mutate(ctx context.Context, write func(ctx context.Context) error, keys ...string) error {
	var g errgroup.Group
	g.Go(func() error {
		return write(ctx)
	})
	g.Go(func() error {
		if err := s.store.Delete(ctx, keys...); err != nil {
			log.Printf("Warning: failed to invalidate cache keys %v: %v", keys, err)
		}
		return nil
	})
	return g.Wait()
}
