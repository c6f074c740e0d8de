package handlers

import (
	"cms/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler exposes the post taxonomy.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// RegisterRoutes registers the category routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleListCategories)
}

// HandleListCategories returns all categories with sub-categories.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}
