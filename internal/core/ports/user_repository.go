package ports

import (
	"context"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
)

// UserRepository is the credential store. All lookups consider only active
// (non-deleted) users, and all calls expect lower-cased emails.
type UserRepository interface {
	// ExistsByEmail reports whether an active user holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindByEmail returns domain.ErrUserNotFound when no active user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Save persists a new user and returns it with its identifier assigned.
	// A uniqueness violation on insert yields domain.ErrDuplicateEmail, so a
	// sign-up losing a race with a concurrent insert still reads as duplicate.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
