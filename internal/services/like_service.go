package services

import (
	"errors"
	"fmt"
	"log"

	"cms/internal/models"
	"cms/internal/repositories"
	"cms/pkg/rabbitmq"
)

// LikeService handles the like/unlike relation between users and posts.
type LikeService struct {
	likeRepo repositories.LikeRepository
	postRepo repositories.PostRepository
	mqClient *rabbitmq.Client
}

// NewLikeService creates a new LikeService. mqClient may be nil.
func NewLikeService(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, mqClient *rabbitmq.Client) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		mqClient: mqClient,
	}
}

// LikePost records a like by the actor on the post. The eligibility
// rule matches reads: public posts or the actor's own. The existence
// pre-check is advisory only; the unique index on (user_id, post_id)
// catches concurrent duplicates and both paths report the same outcome.
func (s *LikeService) LikePost(actor *models.User, postID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !CanViewPost(actor, post) {
		return ErrPrivateLike
	}

	liked, err := s.likeRepo.Exists(actor.ID, postID)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}

	like := &models.Like{UserID: actor.ID, PostID: postID}
	if err := s.likeRepo.Create(like); err != nil {
		if errors.Is(err, repositories.ErrDuplicateLike) {
			return ErrAlreadyLiked
		}
		return fmt.Errorf("failed to like post: %w", err)
	}

	s.publishEvent("post.liked", map[string]interface{}{
		"postID": postID,
		"userID": actor.ID,
	})
	return nil
}

// UnlikePost removes the actor's like from the post.
func (s *LikeService) UnlikePost(actor *models.User, postID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !CanViewPost(actor, post) {
		return ErrPrivateLike
	}

	deleted, err := s.likeRepo.Delete(actor.ID, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotLiked
	}

	s.publishEvent("post.unliked", map[string]interface{}{
		"postID": postID,
		"userID": actor.ID,
	})
	return nil
}

func (s *LikeService) publishEvent(event string, data map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
