package ports

import (
	"context"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
)

// CategoryService defines the use-case operations on catalog categories.
type CategoryService interface {
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id, name, description string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
