package handlers

import (
	"cms/internal/models"
	"cms/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LikeHandler handles HTTP requests for liking and unliking posts.
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// RegisterRoutes registers the like routes; all require bearer auth.
func (h *LikeHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/like/:post_id", h.HandleLikePost)
	router.Delete("/like/:post_id", h.HandleUnlikePost)
}

// HandleLikePost records a like by the authenticated user.
func (h *LikeHandler) HandleLikePost(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if err := h.likeService.LikePost(user, c.Params("post_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post liked",
	})
}

// HandleUnlikePost removes the authenticated user's like.
func (h *LikeHandler) HandleUnlikePost(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if err := h.likeService.UnlikePost(user, c.Params("post_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post unliked",
	})
}
