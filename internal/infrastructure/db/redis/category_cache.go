package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
	"github.com/tpi-backend/e-commerce-api/internal/core/ports"
)

const (
	categoriesKey      = "categories:active"
	defaultCategoryTTL = 5 * time.Minute
)

// CachedCategoryRepository decorates a CategoryRepository with a Redis cache
// for the active-category listing. Cache errors are logged and swallowed; the
// inner repository is always the source of truth. Mutations invalidate the key.
type CachedCategoryRepository struct {
	inner  ports.CategoryRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedCategoryRepository(inner ports.CategoryRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedCategoryRepository {
	if ttl <= 0 {
		ttl = defaultCategoryTTL
	}
	return &CachedCategoryRepository{inner: inner, client: client, ttl: ttl, log: log}
}

func (r *CachedCategoryRepository) FindAllActive(ctx context.Context) ([]domain.Category, error) {
	if payload, err := r.client.Get(ctx, categoriesKey).Bytes(); err == nil {
		var categories []domain.Category
		if err := json.Unmarshal(payload, &categories); err == nil {
			return categories, nil
		}
		r.log.Warn().Msg("corrupt category cache entry, dropping")
		_ = r.client.Del(ctx, categoriesKey).Err()
	} else if err != redis.Nil {
		r.log.Warn().Err(err).Msg("category cache read failed, falling through")
	}

	categories, err := r.inner.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		if err := r.client.Set(ctx, categoriesKey, payload, r.ttl).Err(); err != nil {
			r.log.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

func (r *CachedCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	created, err := r.inner.Create(ctx, category)
	if err == nil {
		r.invalidate(ctx)
	}
	return created, err
}

func (r *CachedCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.inner.FindByID(ctx, id)
}

func (r *CachedCategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	updated, err := r.inner.Update(ctx, category)
	if err == nil {
		r.invalidate(ctx)
	}
	return updated, err
}

func (r *CachedCategoryRepository) SoftDelete(ctx context.Context, id string) error {
	err := r.inner.SoftDelete(ctx, id)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *CachedCategoryRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, categoriesKey).Err(); err != nil {
		r.log.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
