package models

import "time"

// Post is a blog entry owned by exactly one user. OwnerID is set on
// creation and never updated afterwards. CategoryID and SubCategoryID
// are optional display enrichment.
type Post struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title         string    `json:"title" gorm:"type:varchar(200);not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Content       string    `json:"content" gorm:"type:text"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerID       string    `json:"owner_id" gorm:"type:varchar(36);index;not null"`
	CategoryID    string    `json:"category_id,omitempty" gorm:"type:varchar(36)"`
	SubCategoryID string    `json:"sub_category_id,omitempty" gorm:"type:varchar(36)"`
}
