package ports

import (
	"context"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
)

// CategoryRepository persists catalog categories. Reads see only active
// (non-deleted) categories; deletion is a soft-delete update.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	// FindByID returns domain.ErrCategoryNotFound when no active category matches.
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindAllActive(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	SoftDelete(ctx context.Context, id string) error
}
