package handlers

import (
	"library/internal/models"
	"library/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserRequest is the body accepted when creating or replacing a user.
// The password is stored as given.
type UserRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email,max=128"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// UserHandler handles HTTP requests for users. Reads go through the cache.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers lists all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return internalError(c, "getting all users", err)
	}
	return sendJSON(c, users)
}

// HandleGetUserByID returns one user; a missing user renders as {}.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	user, err := h.service.GetUserByID(c.UserContext(), id)
	if err != nil {
		return internalError(c, "getting user", err)
	}
	return sendJSON(c, user)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	user := models.User{Name: req.Name, Email: req.Email, Password: req.Password}
	if err := h.service.CreateUser(c.UserContext(), &user); err != nil {
		return internalError(c, "creating user", err)
	}
	return successful(c, fiber.StatusCreated)
}

// HandleUpdateUser replaces a user's name, email and password.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	var req UserRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	user := models.User{ID: id, Name: req.Name, Email: req.Email, Password: req.Password}
	if err := h.service.UpdateUser(c.UserContext(), &user); err != nil {
		return internalError(c, "updating user", err)
	}
	return successful(c, fiber.StatusOK)
}

// HandleDeleteUser deletes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	if err := h.service.DeleteUser(c.UserContext(), id); err != nil {
		return internalError(c, "deleting user", err)
	}
	return successful(c, fiber.StatusOK)
}
