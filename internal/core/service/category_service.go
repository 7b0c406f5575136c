package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
	"github.com/tpi-backend/e-commerce-api/internal/core/ports"
)

// CategoryService implements catalog category use cases with soft deletion.
type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	category := domain.NewCategory(name, description)
	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.log.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAllActive(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = description
	category.Touch()

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("category soft-deleted")
	return nil
}
