package services

import (
	"context"

	"library/internal/models"
	"library/internal/repositories"
)

// BookService handles business logic related to books.
type BookService struct {
	repo repositories.BookRepository
	pub  EventPublisher
}

// NewBookService creates a new BookService. pub may be nil.
func NewBookService(repo repositories.BookRepository, pub EventPublisher) *BookService {
	return &BookService{
		repo: repo,
		pub:  pub,
	}
}

// GetAllBooks retrieves all books.
func (s *BookService) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	return s.repo.GetAll(ctx)
}

// GetBookByID retrieves a single book, or nil if there is none.
func (s *BookService) GetBookByID(ctx context.Context, id int32) (*models.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateBook creates a new book.
func (s *BookService) CreateBook(ctx context.Context, book *models.Book) error {
	if err := s.repo.Create(ctx, book); err != nil {
		return err
	}
	publishEvent(s.pub, EventBookCreated, map[string]any{"id": book.ID, "title": book.Title})
	return nil
}

// UpdateBook replaces an existing book.
func (s *BookService) UpdateBook(ctx context.Context, book *models.Book) error {
	if err := s.repo.Update(ctx, book); err != nil {
		return err
	}
	publishEvent(s.pub, EventBookUpdated, map[string]any{"id": book.ID})
	return nil
}

// DeleteBook deletes a book by its ID.
func (s *BookService) DeleteBook(ctx context.Context, id int32) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishEvent(s.pub, EventBookDeleted, map[string]any{"id": id})
	return nil
}
