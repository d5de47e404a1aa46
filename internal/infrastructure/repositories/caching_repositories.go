package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	categoriesKey = "taxonomy:categories"
	tagsKey       = "taxonomy:tags"
)

var sf singleflight.Group

func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// loadListWithSingleflight serves key from cache, coalescing concurrent misses into one loader call.
func loadListWithSingleflight[T any](cache ports.Cache, ctx context.Context, key string, ttl time.Duration, loader func() ([]T, error)) ([]T, error) {
	if v, ok := cacheGet[[]T](cache, ctx, key); ok {
		return *v, nil
	}
	res, err, _ := sf.Do(key, func() (any, error) {
		if v, ok := cacheGet[[]T](cache, ctx, key); ok {
			return *v, nil
		}
		all, err := loader()
		if err != nil {
			return nil, err
		}
		cacheSetSilently(cache, ctx, key, all, ttl)
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	all, ok := res.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return all, nil
}

// CachingTaxonomyRepository decorates a TaxonomyRepository with cache-aside on the full lists.
type CachingTaxonomyRepository struct {
	inner ports.TaxonomyRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingTaxonomyRepository(inner ports.TaxonomyRepository, cache ports.Cache, ttl time.Duration) *CachingTaxonomyRepository {
	return &CachingTaxonomyRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingTaxonomyRepository) CreateCategory(ctx context.Context, cat *content.Category) error {
	if err := c.inner.CreateCategory(ctx, cat); err != nil {
		return err
	}
	c.invalidate(ctx, categoriesKey)
	return nil
}

func (c *CachingTaxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteCategory(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, categoriesKey)
	return nil
}

func (c *CachingTaxonomyRepository) ListCategories(ctx context.Context) ([]*content.Category, error) {
	return loadListWithSingleflight(c.cache, ctx, categoriesKey, c.ttl, func() ([]*content.Category, error) {
		return c.inner.ListCategories(ctx)
	})
}

func (c *CachingTaxonomyRepository) CreateTag(ctx context.Context, t *content.Tag) error {
	if err := c.inner.CreateTag(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, tagsKey)
	return nil
}

func (c *CachingTaxonomyRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteTag(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, tagsKey)
	return nil
}

func (c *CachingTaxonomyRepository) ListTags(ctx context.Context) ([]*content.Tag, error) {
	return loadListWithSingleflight(c.cache, ctx, tagsKey, c.ttl, func() ([]*content.Tag, error) {
		return c.inner.ListTags(ctx)
	})
}

func (c *CachingTaxonomyRepository) invalidate(ctx context.Context, key string) {
	if c.cache != nil {
		_ = c.cache.Delete(ctx, key)
	}
}
