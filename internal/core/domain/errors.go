package domain

import "errors"

var (
	// ErrDuplicateEmail is returned when a sign-up collides with an existing
	// active account, either at the pre-check or on insert.
	ErrDuplicateEmail = errors.New("a user with that email already exists")
	ErrUserNotFound   = errors.New("user not found")
	// ErrInvalidToken covers malformed, tampered, and expired tokens alike.
	ErrInvalidToken     = errors.New("invalid token")
	ErrCategoryNotFound = errors.New("category not found")
)
