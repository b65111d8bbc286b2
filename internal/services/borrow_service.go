package services

import (
	"context"

	"library/internal/models"
	"library/internal/repositories"
)

// BorrowService handles business logic related to borrows.
type BorrowService struct {
	repo repositories.BorrowRepository
	pub  EventPublisher
}

// NewBorrowService creates a new BorrowService. pub may be nil.
func NewBorrowService(repo repositories.BorrowRepository, pub EventPublisher) *BorrowService {
	return &BorrowService{
		repo: repo,
		pub:  pub,
	}
}

// GetAllBorrows lists every borrow joined with its user and book.
func (s *BorrowService) GetAllBorrows(ctx context.Context) ([]models.BorrowRecord, error) {
	return s.repo.GetAll(ctx)
}

// GetBorrowsByUser lists the borrows of one user.
func (s *BorrowService) GetBorrowsByUser(ctx context.Context, userID int32) ([]models.BorrowRecord, error) {
	return s.repo.GetByUser(ctx, userID)
}

// GetBorrowsByBook lists the borrows of one book.
func (s *BorrowService) GetBorrowsByBook(ctx context.Context, bookID int32) ([]models.BorrowRecord, error) {
	return s.repo.GetByBook(ctx, bookID)
}

// GetBorrow returns the borrow of bookID by userID, or nil if there is none.
func (s *BorrowService) GetBorrow(ctx context.Context, userID, bookID int32) (*models.BorrowRecord, error) {
	return s.repo.GetPair(ctx, userID, bookID)
}

// CreateBorrow records a borrow. Duplicate pairs are accepted.
func (s *BorrowService) CreateBorrow(ctx context.Context, borrow *models.Borrow) error {
	if err := s.repo.Create(ctx, borrow); err != nil {
		return err
	}
	publishEvent(s.pub, EventBorrowCreated, map[string]any{
		"user_id":     borrow.UserID,
		"book_id":     borrow.BookID,
		"borrow_date": borrow.BorrowDate.String(),
	})
	return nil
}
