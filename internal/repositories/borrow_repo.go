package repositories

import (
	"context"

	"library/internal/models"
)

// BorrowRepository defines the interface for borrow data access. Every read
// joins borrows with users and books, so rows pointing at a missing user or
// book are left out.
type BorrowRepository interface {
	GetAll(ctx context.Context) ([]models.BorrowRecord, error)
	GetByUser(ctx context.Context, userID int32) ([]models.BorrowRecord, error)
	GetByBook(ctx context.Context, bookID int32) ([]models.BorrowRecord, error)
	GetPair(ctx context.Context, userID, bookID int32) (*models.BorrowRecord, error)
	Create(ctx context.Context, borrow *models.Borrow) error
}
