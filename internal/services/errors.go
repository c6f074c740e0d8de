package services

import "errors"

// Sentinel errors for every terminal request outcome. The text is the
// user-facing message; handlers map each error to exactly one status
// code with errors.Is.
var (
	// ErrUnauthenticated covers every credential failure: missing or
	// malformed token, bad signature, expiry, missing subject claim,
	// and tokens referencing a since-deleted user. Collapsing these
	// into one message is deliberate information hiding.
	ErrUnauthenticated = errors.New("Could not validate credentials")

	// ErrInvalidCredentials covers login failures (unknown email and
	// wrong password alike).
	ErrInvalidCredentials = errors.New("Invalid credentials")

	ErrDuplicateEmail = errors.New("Email already registered")

	ErrPostNotFound  = errors.New("Post not found")
	ErrAccessDenied  = errors.New("Access denied")
	ErrNotAuthorized = errors.New("Not authorized")

	ErrPrivateLike  = errors.New("You cannot like a private post you don't own")
	ErrAlreadyLiked = errors.New("You have already liked this post.")
	ErrNotLiked     = errors.New("You have not liked this post")

	ErrUnknownCategory    = errors.New("Unknown category")
	ErrUnknownSubCategory = errors.New("Unknown sub-category")
)
