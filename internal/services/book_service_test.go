package services_test

import (
	"context"
	"fmt"
	"testing"

	"library/internal/models"
	"library/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookService_GetAllBooks(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	expectedBooks := []models.Book{
		{ID: 1, Title: "Book A", Author: "Author A", Category: "Fiction"},
		{ID: 2, Title: "Book B", Author: "Author B", Category: "History"},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expectedBooks, nil).Once()

	books, err := service.GetAllBooks(context.Background())

	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, expectedBooks, books)
	mockRepo.AssertExpectations(t)
}

func TestBookService_GetBookByID(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	expectedBook := &models.Book{ID: 1, Title: "Book A"}

	// Test successful retrieval
	mockRepo.On("GetByID", mock.Anything, int32(1)).Return(expectedBook, nil).Once()
	book, err := service.GetBookByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expectedBook, book)

	// Missing book is not an error
	mockRepo.On("GetByID", mock.Anything, int32(99)).Return(nil, nil).Once()
	book, err = service.GetBookByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, book)
	mockRepo.AssertExpectations(t)
}

func TestBookService_CreateBook(t *testing.T) {
	mockRepo := new(MockBookRepository)
	pub := new(MockPublisher)
	service := services.NewBookService(mockRepo, pub)

	newBook := &models.Book{Title: "New Book", Author: "Someone", Category: "Poetry"}

	// Test successful creation
	mockRepo.On("Create", mock.Anything, newBook).Return(nil).Once()
	pub.On("Publish", services.EventsExchange, services.EventBookCreated, mock.Anything).Return(nil).Once()
	err := service.CreateBook(context.Background(), newBook)
	assert.NoError(t, err)

	// Test creation failure: nothing is published
	mockRepo.On("Create", mock.Anything, newBook).Return(fmt.Errorf("database error")).Once()
	err = service.CreateBook(context.Background(), newBook)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestBookService_UpdateBook(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	updatedBook := &models.Book{ID: 1, Title: "Book A Updated"}

	mockRepo.On("Update", mock.Anything, updatedBook).Return(nil).Once()
	assert.NoError(t, service.UpdateBook(context.Background(), updatedBook))

	mockRepo.On("Update", mock.Anything, updatedBook).Return(fmt.Errorf("failed to update book 1: timeout")).Once()
	err := service.UpdateBook(context.Background(), updatedBook)
	assert.ErrorContains(t, err, "timeout")
	mockRepo.AssertExpectations(t)
}

func TestBookService_DeleteBook(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	mockRepo.On("Delete", mock.Anything, int32(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteBook(context.Background(), 1))

	mockRepo.On("Delete", mock.Anything, int32(2)).Return(fmt.Errorf("failed to delete book 2: locked")).Once()
	assert.Error(t, service.DeleteBook(context.Background(), 2))
	mockRepo.AssertExpectations(t)
}
