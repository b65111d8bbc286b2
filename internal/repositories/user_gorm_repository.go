package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all users in storage order.
func (r *GORMUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Find(&users).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(ctx context.Context, id int32) (*models.User, error) {
	var user models.User
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.First(&user, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// Create inserts a new user. Status defaults to active.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Status == "" {
		user.Status = models.StatusActive
	}
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Create(user).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update replaces the name, email and password of the user with user.ID and
// bumps updated_at. Updating a missing user is not an error.
func (r *GORMUserRepository) Update(ctx context.Context, user *models.User) error {
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
			"name":       user.Name,
			"email":      user.Email,
			"password":   user.Password,
			"updated_at": time.Now(),
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return nil
}

// Delete removes a user by their ID. Deleting a missing user is not an error.
func (r *GORMUserRepository) Delete(ctx context.Context, id int32) error {
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Delete(&models.User{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
