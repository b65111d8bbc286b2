package repositories

import (
	"context"

	"library/internal/models"
)

// UserRepository defines the interface for user data access.
// GetByID returns nil without an error when no user matches.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int32) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int32) error
}
