package models

// Category is a top-level taxonomy entry posts may reference.
type Category struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string        `json:"name" gorm:"type:varchar(100);not null"`
	SubCategories []SubCategory `json:"sub_categories" gorm:"foreignKey:CategoryID"`
}

// SubCategory belongs to exactly one Category.
type SubCategory struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"type:varchar(100);not null"`
	CategoryID string `json:"category_id" gorm:"type:varchar(36);index;not null"`
}
