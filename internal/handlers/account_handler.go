package handlers

import (
	"log"

	"cms/internal/models"
	"cms/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for accounts and authentication.
type AccountHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authService *services.AuthService) *AccountHandler {
	return &AccountHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterPublicRoutes registers the routes reachable without a token.
func (h *AccountHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/accounts", h.HandleRegister)
	router.Post("/accounts/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the routes requiring bearer auth.
func (h *AccountHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/me", h.HandleGetMe)
	router.Put("/accounts", h.HandleUpdateAccount)
	router.Delete("/accounts", h.HandleDeleteAccount)
}

// AccountRequest is the body for registration and account updates.
type AccountRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates a new account.
func (h *AccountHandler) HandleRegister(c *fiber.Ctx) error {
	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// LoginRequest is form-encoded; the username field carries the email.
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a bearer token.
func (h *AccountHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// HandleGetMe returns the authenticated user.
func (h *AccountHandler) HandleGetMe(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(user)
}

// HandleUpdateAccount replaces the mutable account fields.
func (h *AccountHandler) HandleUpdateAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing account update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	updated, err := h.authService.UpdateAccount(user, req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteAccount removes the authenticated user's account and
// everything it owns.
func (h *AccountHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if err := h.authService.DeleteAccount(user); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}
