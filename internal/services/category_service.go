package services

import (
	"cms/internal/models"
	"cms/internal/repositories"
)

// CategoryService exposes the post taxonomy.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// ListCategories returns all categories with their sub-categories.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.repo.ListCategories()
}
