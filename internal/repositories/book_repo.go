package repositories

import (
	"context"

	"library/internal/models"
)

// BookRepository defines the interface for book data access.
// GetByID returns nil without an error when no book matches.
type BookRepository interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id int32) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id int32) error
}
