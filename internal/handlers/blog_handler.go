package handlers

import (
	"log"

	"cms/internal/models"
	"cms/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	postService *services.PostService
	validate    *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(postService *services.PostService) *BlogHandler {
	return &BlogHandler{
		postService: postService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the blog routes; all require bearer auth.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	blogRoutes := router.Group("/blog")
	blogRoutes.Post("/", h.HandleCreatePost)
	blogRoutes.Get("/", h.HandleListPosts)
	blogRoutes.Get("/:id", h.HandleGetPost)
	blogRoutes.Put("/:id", h.HandleUpdatePost)
	blogRoutes.Delete("/:id", h.HandleDeletePost)
}

// PostRequest is the body for creating and updating posts. Visibility
// defaults to public when omitted.
type PostRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Description   string `json:"description"`
	Content       string `json:"content" validate:"required"`
	IsPublic      *bool  `json:"is_public"`
	CategoryID    string `json:"category_id"`
	SubCategoryID string `json:"sub_category_id"`
}

func (r *PostRequest) toInput() services.PostInput {
	isPublic := true
	if r.IsPublic != nil {
		isPublic = *r.IsPublic
	}
	return services.PostInput{
		Title:         r.Title,
		Description:   r.Description,
		Content:       r.Content,
		IsPublic:      isPublic,
		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
	}
}

// HandleCreatePost creates a post owned by the authenticated user.
func (h *BlogHandler) HandleCreatePost(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create post body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	post, err := h.postService.CreatePost(user, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleListPosts returns all posts visible to the authenticated user.
func (h *BlogHandler) HandleListPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	posts, err := h.postService.ListPosts(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// HandleGetPost returns a single post if the user may read it.
func (h *BlogHandler) HandleGetPost(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	post, err := h.postService.GetPost(user, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleUpdatePost replaces the mutable fields of an owned post.
func (h *BlogHandler) HandleUpdatePost(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update post body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	post, err := h.postService.UpdatePost(user, c.Params("id"), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleDeletePost removes an owned post.
func (h *BlogHandler) HandleDeletePost(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if err := h.postService.DeletePost(user, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}
