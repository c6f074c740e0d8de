package repositories

import "cms/internal/models"

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	// FindVisible returns the union of all public posts and all posts
	// owned by the given user, in the database's natural order.
	FindVisible(userID string) ([]models.Post, error)
	Update(post *models.Post) error
	// Delete removes the post together with its likes.
	Delete(id string) error
}
