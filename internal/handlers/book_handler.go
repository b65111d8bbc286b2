package handlers

import (
	"library/internal/models"
	"library/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookRequest is the body accepted when creating or replacing a book.
type BookRequest struct {
	Title       string  `json:"title" validate:"required,max=128"`
	Author      string  `json:"author" validate:"required,max=128"`
	Content     *string `json:"content"`
	Category    string  `json:"category" validate:"required,max=128"`
	PublishDate string  `json:"publish_date" validate:"required,datetime=2006-01-02"`
}

func (r BookRequest) toModel(id int32) models.Book {
	date, _ := models.ParseDate(r.PublishDate) // format checked by the validator
	return models.Book{
		ID:          id,
		Title:       r.Title,
		Author:      r.Author,
		Content:     r.Content,
		Category:    r.Category,
		PublishDate: date,
	}
}

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	service  *services.BookService
	validate *validator.Validate
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service *services.BookService) *BookHandler {
	return &BookHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the book routes with the Fiber app.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleGetBooks)
	bookRoutes.Get("/:id", h.HandleGetBookByID)
	bookRoutes.Post("/", h.HandleCreateBook)
	bookRoutes.Put("/:id", h.HandleUpdateBook)
	bookRoutes.Delete("/:id", h.HandleDeleteBook)
}

// HandleGetBooks lists all books.
func (h *BookHandler) HandleGetBooks(c *fiber.Ctx) error {
	books, err := h.service.GetAllBooks(c.UserContext())
	if err != nil {
		return internalError(c, "getting all books", err)
	}
	return c.JSON(books)
}

// HandleGetBookByID returns one book, or {} when it does not exist.
func (h *BookHandler) HandleGetBookByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	book, err := h.service.GetBookByID(c.UserContext(), id)
	if err != nil {
		return internalError(c, "getting book", err)
	}
	if book == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(book)
}

// HandleCreateBook creates a new book.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var req BookRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	book := req.toModel(0)
	if err := h.service.CreateBook(c.UserContext(), &book); err != nil {
		return internalError(c, "creating book", err)
	}
	return successful(c, fiber.StatusCreated)
}

// HandleUpdateBook replaces every field of a book.
func (h *BookHandler) HandleUpdateBook(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	var req BookRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	book := req.toModel(id)
	if err := h.service.UpdateBook(c.UserContext(), &book); err != nil {
		return internalError(c, "updating book", err)
	}
	return successful(c, fiber.StatusOK)
}

// HandleDeleteBook deletes a book.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	if err := h.service.DeleteBook(c.UserContext(), id); err != nil {
		return internalError(c, "deleting book", err)
	}
	return successful(c, fiber.StatusOK)
}
