package services

import (
	"fmt"
	"log"

	"cms/internal/models"
	"cms/internal/repositories"
	"cms/pkg/rabbitmq"
)

// PostInput carries the client-writable post fields. The owner and
// creation timestamp are never taken from the client.
type PostInput struct {
	Title         string
	Description   string
	Content       string
	IsPublic      bool
	CategoryID    string
	SubCategoryID string
}

// PostService handles business logic for blog posts.
type PostService struct {
	postRepo           repositories.PostRepository
	categoryRepo       repositories.CategoryRepository
	validateCategories bool
	mqClient           *rabbitmq.Client
}

// NewPostService creates a new PostService. When validateCategories is
// true, posts referencing unknown category or sub-category ids are
// rejected; otherwise the ids are stored as opaque enrichment.
func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository, validateCategories bool, mqClient *rabbitmq.Client) *PostService {
	return &PostService{
		postRepo:           postRepo,
		categoryRepo:       categoryRepo,
		validateCategories: validateCategories,
		mqClient:           mqClient,
	}
}

// CreatePost creates a post owned by the actor.
func (s *PostService) CreatePost(actor *models.User, input PostInput) (*models.Post, error) {
	if err := s.checkCategories(input); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:         input.Title,
		Description:   input.Description,
		Content:       input.Content,
		IsPublic:      input.IsPublic,
		OwnerID:       actor.ID,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.publishEvent("post.created", map[string]interface{}{
		"postID":  post.ID,
		"ownerID": post.OwnerID,
		"public":  post.IsPublic,
	})
	return post, nil
}

// ListPosts returns every post the actor may read: all public posts
// plus the actor's own private ones.
func (s *PostService) ListPosts(actor *models.User) ([]models.Post, error) {
	return s.postRepo.FindVisible(actor.ID)
}

// GetPost retrieves a single post. Existence is checked before
// visibility, so a missing post is always reported as not found.
func (s *PostService) GetPost(actor *models.User, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !CanViewPost(actor, post) {
		return nil, ErrAccessDenied
	}
	return post, nil
}

// UpdatePost replaces the mutable fields of an owned post. The owner
// reference and creation timestamp are immutable.
func (s *PostService) UpdatePost(actor *models.User, id string, input PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !IsPostOwner(actor, post) {
		return nil, ErrNotAuthorized
	}
	if err := s.checkCategories(input); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Description = input.Description
	post.Content = input.Content
	post.IsPublic = input.IsPublic
	post.CategoryID = input.CategoryID
	post.SubCategoryID = input.SubCategoryID
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost removes an owned post together with its likes.
func (s *PostService) DeletePost(actor *models.User, id string) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !IsPostOwner(actor, post) {
		return ErrNotAuthorized
	}
	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// checkCategories validates category references in strict mode. A
// sub-category must exist and belong to the referenced category.
func (s *PostService) checkCategories(input PostInput) error {
	if !s.validateCategories {
		return nil
	}
	if input.CategoryID != "" {
		category, err := s.categoryRepo.GetCategoryByID(input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrUnknownCategory
		}
	}
	if input.SubCategoryID != "" {
		subCategory, err := s.categoryRepo.GetSubCategoryByID(input.SubCategoryID)
		if err != nil {
			return err
		}
		if subCategory == nil || subCategory.CategoryID != input.CategoryID {
			return ErrUnknownSubCategory
		}
	}
	return nil
}

func (s *PostService) publishEvent(event string, data map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
