package repositories

import (
	"context"
	"fmt"

	"library/internal/models"

	"gorm.io/gorm"
)

// GORMBorrowRepository is a GORM implementation of BorrowRepository.
type GORMBorrowRepository struct {
	db *gorm.DB
}

// NewGORMBorrowRepository creates a new instance of GORMBorrowRepository.
func NewGORMBorrowRepository(db *gorm.DB) *GORMBorrowRepository {
	return &GORMBorrowRepository{
		db: db,
	}
}

func borrowRecords(conn *gorm.DB) *gorm.DB {
	return conn.Table(`"BORROW" AS br`).
		Select("u.name AS user_name, bk.title AS book_title, br.borrow_date").
		Joins(`INNER JOIN "USERS" AS u ON br.user_id = u.id`).
		Joins(`INNER JOIN "BOOKS" AS bk ON br.book_id = bk.id`)
}

func (r *GORMBorrowRepository) find(ctx context.Context, query string, args ...any) ([]models.BorrowRecord, error) {
	records := make([]models.BorrowRecord, 0)
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		q := borrowRecords(conn)
		if query != "" {
			q = q.Where(query, args...)
		}
		return q.Scan(&records).Error
	})
	return records, err
}

// GetAll lists every borrow with its user's name and book's title.
func (r *GORMBorrowRepository) GetAll(ctx context.Context) ([]models.BorrowRecord, error) {
	records, err := r.find(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get all borrows: %w", err)
	}
	return records, nil
}

// GetByUser lists the borrows of one user.
func (r *GORMBorrowRepository) GetByUser(ctx context.Context, userID int32) ([]models.BorrowRecord, error) {
	records, err := r.find(ctx, "br.user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get borrows for user %d: %w", userID, err)
	}
	return records, nil
}

// GetByBook lists the borrows of one book.
func (r *GORMBorrowRepository) GetByBook(ctx context.Context, bookID int32) ([]models.BorrowRecord, error) {
	records, err := r.find(ctx, "br.book_id = ?", bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get borrows for book %d: %w", bookID, err)
	}
	return records, nil
}

// GetPair returns the first borrow of bookID by userID, or nil if there is none.
func (r *GORMBorrowRepository) GetPair(ctx context.Context, userID, bookID int32) (*models.BorrowRecord, error) {
	records, err := r.find(ctx, "br.user_id = ? AND br.book_id = ?", userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get borrow for user %d and book %d: %w", userID, bookID, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Create inserts a borrow row. The referenced user and book are not checked.
func (r *GORMBorrowRepository) Create(ctx context.Context, borrow *models.Borrow) error {
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Create(borrow).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create borrow: %w", err)
	}
	return nil
}
