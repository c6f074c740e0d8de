package repositories

import "cms/internal/models"

// LikeRepository defines the interface for like data access.
type LikeRepository interface {
	Create(like *models.Like) error
	Exists(userID, postID string) (bool, error)
	// Delete removes the like for (userID, postID) and reports whether
	// a row was actually deleted.
	Delete(userID, postID string) (bool, error)
	CountByPost(postID string) (int64, error)
}
