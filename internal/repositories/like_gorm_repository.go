package repositories

import (
	"errors"
	"fmt"

	"cms/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateLike is returned when an insert hits the (user_id, post_id)
// unique index. Two concurrent likes can both pass the service-level
// existence check; the index is what actually enforces the invariant.
var ErrDuplicateLike = errors.New("like already exists")

// GORMLikeRepository is a GORM implementation of LikeRepository.
type GORMLikeRepository struct {
	db *gorm.DB
}

// NewGORMLikeRepository creates a new instance of GORMLikeRepository.
func NewGORMLikeRepository(db *gorm.DB) *GORMLikeRepository {
	return &GORMLikeRepository{
		db: db,
	}
}

// Create inserts a like row. A unique-index violation is reported as
// ErrDuplicateLike.
func (r *GORMLikeRepository) Create(like *models.Like) error {
	if like.ID == "" {
		like.ID = uuid.New().String()
	}
	if err := r.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateLike
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// Exists reports whether the (userID, postID) like row is present.
func (r *GORMLikeRepository) Exists(userID, postID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return count > 0, nil
}

// Delete removes the (userID, postID) like row if present.
func (r *GORMLikeRepository) Delete(userID, postID string) (bool, error) {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete like: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CountByPost returns the number of likes on a post.
func (r *GORMLikeRepository) CountByPost(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes for post %s: %w", postID, err)
	}
	return count, nil
}
