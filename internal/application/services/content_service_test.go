package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/devillabs/cms-api/internal/application/services"
	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestContentService_ListBlogsForcesPublishedAndClampsPage(t *testing.T) {
	var got content.BlogFilter
	blogs := &mocks.BlogRepositoryMock{ListFn: func(ctx context.Context, f content.BlogFilter) ([]*content.Blog, error) {
		got = f
		return nil, nil
	}}
	svc := services.NewContentService(services.ContentRepositories{Blogs: blogs}, nil)

	_, err := svc.ListBlogs(context.Background(), content.BlogFilter{Skip: -4, Limit: 500, Search: "go"})
	require.NoError(t, err)
	require.True(t, got.PublishedOnly)
	require.Equal(t, 0, got.Skip)
	require.Equal(t, 100, got.Limit)
	require.Equal(t, "go", got.Search)

	_, err = svc.ListBlogs(context.Background(), content.BlogFilter{})
	require.NoError(t, err)
	require.Equal(t, 10, got.Limit)
}

func TestContentService_GetPublishedBlogCountsViews(t *testing.T) {
	id := uuid.New()
	blogs := &mocks.BlogRepositoryMock{
		GetBySlugFn: func(ctx context.Context, slug string) (*content.Blog, error) {
			return &content.Blog{ID: id, Slug: slug, Published: slug == "live", Views: 4}, nil
		},
		IncrementViewsFn: func(ctx context.Context, got uuid.UUID) (int, error) {
			require.Equal(t, id, got)
			return 5, nil
		},
	}
	svc := services.NewContentService(services.ContentRepositories{Blogs: blogs}, nil)

	b, err := svc.GetPublishedBlog(context.Background(), "live")
	require.NoError(t, err)
	require.Equal(t, 5, b.Views)

	_, err = svc.GetPublishedBlog(context.Background(), "draft")
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestContentService_InactiveServiceIsHidden(t *testing.T) {
	repo := &mocks.ServiceRepositoryMock{GetBySlugFn: func(ctx context.Context, slug string) (*content.Service, error) {
		return &content.Service{Slug: slug, Active: false}, nil
	}}
	svc := services.NewContentService(services.ContentRepositories{Services: repo}, nil)
	_, err := svc.GetActiveService(context.Background(), "consulting")
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestContentService_CreateBlogSlugs(t *testing.T) {
	var created *content.Blog
	taken := map[string]bool{"hello-world": true}
	blogs := &mocks.BlogRepositoryMock{
		SlugExistsFn: func(ctx context.Context, slug string) (bool, error) { return taken[slug], nil },
		CreateFn: func(ctx context.Context, b *content.Blog) error {
			created = b
			return nil
		},
	}
	svc := services.NewContentService(services.ContentRepositories{Blogs: blogs}, nil)

	b, err := svc.CreateBlog(context.Background(), &content.CreateBlogRequest{Title: "Getting Started With Go", Published: true})
	require.NoError(t, err)
	require.Equal(t, "getting-started-with-go", b.Slug)
	require.Equal(t, content.DefaultAuthor, b.Author)
	require.NotNil(t, b.PublishedAt)
	require.Same(t, b, created)

	b, err = svc.CreateBlog(context.Background(), &content.CreateBlogRequest{Title: "Hello World"})
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^hello-world-\d{14}$`), b.Slug)
	require.Nil(t, b.PublishedAt)
}

func TestContentService_UpdateBlogRegeneratesSlugOnTitleChange(t *testing.T) {
	existing := &content.Blog{ID: uuid.New(), Title: "Old", Slug: "old"}
	blogs := &mocks.BlogRepositoryMock{
		GetBySlugFn: func(ctx context.Context, slug string) (*content.Blog, error) { return existing, nil },
	}
	svc := services.NewContentService(services.ContentRepositories{Blogs: blogs}, nil)

	title := "Brand New Title"
	published := true
	b, err := svc.UpdateBlog(context.Background(), "old", &content.UpdateBlogRequest{Title: &title, Published: &published})
	require.NoError(t, err)
	require.Equal(t, "brand-new-title", b.Slug)
	require.NotNil(t, b.PublishedAt)
}

func TestContentService_CreateProjectDefaultsStatus(t *testing.T) {
	svc := services.NewContentService(services.ContentRepositories{Projects: &mocks.ProjectRepositoryMock{}}, nil)
	p, err := svc.CreateProject(context.Background(), &content.CreateProjectRequest{Title: "Portfolio"})
	require.NoError(t, err)
	require.Equal(t, content.ProjectStatusCompleted, p.Status)
	require.Equal(t, "portfolio", p.Slug)
}

func TestContentService_CreateToolDefaults(t *testing.T) {
	svc := services.NewContentService(services.ContentRepositories{Tools: &mocks.ToolRepositoryMock{}}, nil)
	tool, err := svc.CreateTool(context.Background(), &content.CreateToolRequest{Name: "Port Scanner"})
	require.NoError(t, err)
	require.True(t, tool.Active)
	require.Equal(t, "free", tool.Pricing)
	require.Equal(t, "port-scanner", tool.Slug)
}

func TestContentService_CreateCategoryPropagatesDuplicate(t *testing.T) {
	tax := &mocks.TaxonomyRepositoryMock{CreateCategoryFn: func(context.Context, *content.Category) error {
		return content.ErrDuplicateName
	}}
	svc := services.NewContentService(services.ContentRepositories{Taxonomy: tax}, nil)
	_, err := svc.CreateCategory(context.Background(), &content.CreateCategoryRequest{Name: "AI"})
	require.ErrorIs(t, err, content.ErrDuplicateName)
}
