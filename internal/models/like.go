package models

import "time"

// Like is the join record between a user and a post. The composite
// unique index guarantees at most one like per (user, post) pair even
// when two requests race past the application-level existence check.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_user_post"`
	PostID    string    `json:"post_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
