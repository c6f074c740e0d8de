package services

import "cms/internal/models"

// Authorization rules are pure predicates over (actor, post). Existence
// is always checked before these are consulted, so a nil post never
// reaches them.

// CanViewPost reports whether the actor may read or like the post:
// public posts are open to everyone, private posts only to their owner.
func CanViewPost(actor *models.User, post *models.Post) bool {
	return post.IsPublic || post.OwnerID == actor.ID
}

// IsPostOwner reports whether the actor owns the post. Writes and
// deletes require ownership regardless of visibility.
func IsPostOwner(actor *models.User, post *models.Post) bool {
	return post.OwnerID == actor.ID
}
