package repositories_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/infrastructure/repositories"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCachingTaxonomyRepository_CachesAndInvalidates(t *testing.T) {
	var calls int32
	inner := &mocks.TaxonomyRepositoryMock{
		ListCategoriesFn: func(context.Context) ([]*content.Category, error) {
			atomic.AddInt32(&calls, 1)
			return []*content.Category{{ID: uuid.New(), Name: "AI", Slug: "ai"}}, nil
		},
	}
	repo := repositories.NewCachingTaxonomyRepository(inner, mocks.NewMemoryCache(), time.Minute)
	ctx := context.Background()

	first, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	second, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	require.Equal(t, first[0].Name, second[0].Name)

	require.NoError(t, repo.CreateCategory(ctx, &content.Category{Name: "Security"}))
	_, err = repo.ListCategories(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCachingTaxonomyRepository_CoalescesConcurrentMisses(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	inner := &mocks.TaxonomyRepositoryMock{
		ListTagsFn: func(context.Context) ([]*content.Tag, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return []*content.Tag{{Name: "go"}}, nil
		},
	}
	repo := repositories.NewCachingTaxonomyRepository(inner, mocks.NewMemoryCache(), time.Minute)

	results := make([]int, 10)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tags, err := repo.ListTags(context.Background())
			if err == nil {
				results[i] = len(tags)
			}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for _, n := range results {
		require.Equal(t, 1, n)
	}
}

func TestCachingTaxonomyRepository_NilCachePassesThrough(t *testing.T) {
	var calls int32
	inner := &mocks.TaxonomyRepositoryMock{
		ListTagsFn: func(context.Context) ([]*content.Tag, error) {
			atomic.AddInt32(&calls, 1)
			return nil, nil
		},
	}
	repo := repositories.NewCachingTaxonomyRepository(inner, nil, time.Minute)
	_, _ = repo.ListTags(context.Background())
	_, _ = repo.ListTags(context.Background())
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCachingTaxonomyRepository_FailedDeleteKeepsCache(t *testing.T) {
	cache := mocks.NewMemoryCache()
	inner := &mocks.TaxonomyRepositoryMock{
		DeleteTagFn: func(context.Context, uuid.UUID) error { return content.ErrNotFound },
	}
	repo := repositories.NewCachingTaxonomyRepository(inner, cache, time.Minute)
	_, err := repo.ListTags(context.Background())
	require.NoError(t, err)

	require.ErrorIs(t, repo.DeleteTag(context.Background(), uuid.New()), content.ErrNotFound)
	_, ok, _ := cache.Get(context.Background(), "taxonomy:tags")
	require.True(t, ok)
}
