package repositories

import "cms/internal/models"

// CategoryRepository defines the interface for taxonomy data access.
type CategoryRepository interface {
	CreateCategory(category *models.Category) error
	CreateSubCategory(subCategory *models.SubCategory) error
	GetCategoryByID(id string) (*models.Category, error)
	GetSubCategoryByID(id string) (*models.SubCategory, error)
	// ListCategories returns all categories with their sub-categories.
	ListCategories() ([]models.Category, error)
}
