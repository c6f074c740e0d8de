package repositories

import (
	"fmt"

	"cms/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// CreateCategory creates a new category.
func (r *GORMCategoryRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateSubCategory creates a new sub-category.
func (r *GORMCategoryRepository) CreateSubCategory(subCategory *models.SubCategory) error {
	if subCategory.ID == "" {
		subCategory.ID = uuid.New().String()
	}
	if err := r.db.Create(subCategory).Error; err != nil {
		return fmt.Errorf("failed to create sub-category: %w", err)
	}
	return nil
}

// GetCategoryByID retrieves a category by ID. Returns (nil, nil) when absent.
func (r *GORMCategoryRepository) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// GetSubCategoryByID retrieves a sub-category by ID. Returns (nil, nil) when absent.
func (r *GORMCategoryRepository) GetSubCategoryByID(id string) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	if err := r.db.First(&subCategory, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sub-category by ID %s: %w", id, err)
	}
	return &subCategory, nil
}

// ListCategories returns all categories with their sub-categories preloaded.
func (r *GORMCategoryRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("SubCategories").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
