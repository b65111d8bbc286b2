package repositories

import (
	"context"
	"errors"
	"fmt"

	"library/internal/models"

	"gorm.io/gorm"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

// GetAll retrieves all books in storage order.
func (r *GORMBookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	books := make([]models.Book, 0)
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Find(&books).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book by its ID.
func (r *GORMBookRepository) GetByID(ctx context.Context, id int32) (*models.Book, error) {
	var book models.Book
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.First(&book, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book by ID %d: %w", id, err)
	}
	return &book, nil
}

// Create inserts a new book and fills in its generated ID.
func (r *GORMBookRepository) Create(ctx context.Context, book *models.Book) error {
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Create(book).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// Update replaces every column of the book with book.ID. Updating a missing
// book is not an error.
func (r *GORMBookRepository) Update(ctx context.Context, book *models.Book) error {
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Model(&models.Book{}).Where("id = ?", book.ID).Updates(map[string]any{
			"title":        book.Title,
			"author":       book.Author,
			"content":      book.Content,
			"category":     book.Category,
			"publish_date": book.PublishDate,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update book %d: %w", book.ID, err)
	}
	return nil
}

// Delete removes a book by its ID. Deleting a missing book is not an error.
func (r *GORMBookRepository) Delete(ctx context.Context, id int32) error {
	err := withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Delete(&models.Book{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}
