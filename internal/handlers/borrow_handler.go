package handlers

import (
	"library/internal/models"
	"library/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BorrowRequest is the body accepted when recording a borrow. The user and
// book are not checked for existence.
type BorrowRequest struct {
	UserID     int64  `json:"user_id" validate:"required,min=1,max=2147483647"`
	BookID     int64  `json:"book_id" validate:"required,min=1,max=2147483647"`
	BorrowDate string `json:"borrow_date" validate:"required,datetime=2006-01-02"`
}

// BorrowHandler handles HTTP requests for borrows.
type BorrowHandler struct {
	service  *services.BorrowService
	validate *validator.Validate
}

// NewBorrowHandler creates a new BorrowHandler.
func NewBorrowHandler(service *services.BorrowService) *BorrowHandler {
	return &BorrowHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the borrow routes with the Fiber app. The fixed
// /books and /users prefixes are registered before the /:userId/:bookId
// pattern so they take precedence.
func (h *BorrowHandler) RegisterRoutes(router fiber.Router) {
	borrowRoutes := router.Group("/borrow")
	borrowRoutes.Get("/", h.HandleGetBorrows)
	borrowRoutes.Get("/books/:userId", h.HandleGetBorrowsByUser)
	borrowRoutes.Get("/users/:bookId", h.HandleGetBorrowsByBook)
	borrowRoutes.Get("/:userId/:bookId", h.HandleGetBorrow)
	borrowRoutes.Post("/", h.HandleCreateBorrow)
}

// HandleGetBorrows lists every borrow with user name and book title.
func (h *BorrowHandler) HandleGetBorrows(c *fiber.Ctx) error {
	records, err := h.service.GetAllBorrows(c.UserContext())
	if err != nil {
		return internalError(c, "getting all borrows", err)
	}
	return c.JSON(records)
}

// HandleGetBorrowsByUser lists the books borrowed by a user.
func (h *BorrowHandler) HandleGetBorrowsByUser(c *fiber.Ctx) error {
	userID, ok := parseID(c, "userId")
	if !ok {
		return badRequest(c, "Invalid User ID")
	}
	records, err := h.service.GetBorrowsByUser(c.UserContext(), userID)
	if err != nil {
		return internalError(c, "getting borrows by user", err)
	}
	return c.JSON(records)
}

// HandleGetBorrowsByBook lists the users who borrowed a book.
func (h *BorrowHandler) HandleGetBorrowsByBook(c *fiber.Ctx) error {
	bookID, ok := parseID(c, "bookId")
	if !ok {
		return badRequest(c, "Invalid Book ID")
	}
	records, err := h.service.GetBorrowsByBook(c.UserContext(), bookID)
	if err != nil {
		return internalError(c, "getting borrows by book", err)
	}
	return c.JSON(records)
}

// HandleGetBorrow returns one borrow for the pair, or {} when there is none.
func (h *BorrowHandler) HandleGetBorrow(c *fiber.Ctx) error {
	userID, ok := parseID(c, "userId")
	if !ok {
		return badRequest(c, "Invalid User ID")
	}
	bookID, ok := parseID(c, "bookId")
	if !ok {
		return badRequest(c, "Invalid Book ID")
	}
	record, err := h.service.GetBorrow(c.UserContext(), userID, bookID)
	if err != nil {
		return internalError(c, "getting borrow", err)
	}
	if record == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(record)
}

// HandleCreateBorrow records a new borrow.
func (h *BorrowHandler) HandleCreateBorrow(c *fiber.Ctx) error {
	var req BorrowRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	date, _ := models.ParseDate(req.BorrowDate) // format checked by the validator
	borrow := models.Borrow{
		UserID:     int32(req.UserID),
		BookID:     int32(req.BookID),
		BorrowDate: date,
	}
	if err := h.service.CreateBorrow(c.UserContext(), &borrow); err != nil {
		return internalError(c, "creating borrow", err)
	}
	return successful(c, fiber.StatusCreated)
}
