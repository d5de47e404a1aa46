package ports

import (
	"context"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/google/uuid"
)

// BlogRepository defines persistence for blog posts. Lookups return content.ErrNotFound when absent.
type BlogRepository interface {
	Create(ctx context.Context, b *content.Blog) error
	Update(ctx context.Context, b *content.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetBySlug(ctx context.Context, slug string) (*content.Blog, error)
	List(ctx context.Context, f content.BlogFilter) ([]*content.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
	IncrementLikes(ctx context.Context, slug string) (int, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *content.Project) error
	Update(ctx context.Context, p *content.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetBySlug(ctx context.Context, slug string) (*content.Project, error)
	List(ctx context.Context, f content.ProjectFilter) ([]*content.Project, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *content.Service) error
	Update(ctx context.Context, s *content.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetBySlug(ctx context.Context, slug string) (*content.Service, error)
	List(ctx context.Context, f content.ServiceFilter) ([]*content.Service, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type ToolRepository interface {
	Create(ctx context.Context, t *content.Tool) error
	Update(ctx context.Context, t *content.Tool) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*content.Tool, error)
	GetBySlug(ctx context.Context, slug string) (*content.Tool, error)
	List(ctx context.Context, f content.ToolFilter) ([]*content.Tool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
	IncrementClicks(ctx context.Context, slug string) (int, error)
}

// TaxonomyRepository stores categories and tags.
type TaxonomyRepository interface {
	CreateCategory(ctx context.Context, c *content.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*content.Category, error)
	CreateTag(ctx context.Context, t *content.Tag) error
	DeleteTag(ctx context.Context, id uuid.UUID) error
	ListTags(ctx context.Context) ([]*content.Tag, error)
}

type StatsRepository interface {
	GetStats(ctx context.Context) (*content.Stats, error)
}

// ContentService exposes the public, read-only content surface.
type ContentService interface {
	ListBlogs(ctx context.Context, f content.BlogFilter) ([]*content.Blog, error)
	GetPublishedBlog(ctx context.Context, slug string) (*content.Blog, error)
	LikeBlog(ctx context.Context, slug string) (int, error)
	ListProjects(ctx context.Context, f content.ProjectFilter) ([]*content.Project, error)
	GetPublishedProject(ctx context.Context, slug string) (*content.Project, error)
	ListServices(ctx context.Context, f content.ServiceFilter) ([]*content.Service, error)
	GetActiveService(ctx context.Context, slug string) (*content.Service, error)
	ListTools(ctx context.Context, f content.ToolFilter) ([]*content.Tool, error)
	GetActiveTool(ctx context.Context, slug string) (*content.Tool, error)
	ClickTool(ctx context.Context, slug string) (int, error)
	ListCategories(ctx context.Context) ([]*content.Category, error)
	ListTags(ctx context.Context) ([]*content.Tag, error)
	Stats(ctx context.Context) (*content.Stats, error)
}

// ContentAdminService exposes write operations for the CMS operator.
type ContentAdminService interface {
	ListAllBlogs(ctx context.Context, skip, limit int) ([]*content.Blog, error)
	GetBlog(ctx context.Context, slug string) (*content.Blog, error)
	CreateBlog(ctx context.Context, req *content.CreateBlogRequest) (*content.Blog, error)
	UpdateBlog(ctx context.Context, slug string, req *content.UpdateBlogRequest) (*content.Blog, error)
	DeleteBlog(ctx context.Context, slug string) error

	ListAllProjects(ctx context.Context, skip, limit int) ([]*content.Project, error)
	GetProject(ctx context.Context, slug string) (*content.Project, error)
	CreateProject(ctx context.Context, req *content.CreateProjectRequest) (*content.Project, error)
	UpdateProject(ctx context.Context, slug string, req *content.UpdateProjectRequest) (*content.Project, error)
	DeleteProject(ctx context.Context, slug string) error

	ListAllServices(ctx context.Context) ([]*content.Service, error)
	GetService(ctx context.Context, slug string) (*content.Service, error)
	CreateService(ctx context.Context, req *content.CreateServiceRequest) (*content.Service, error)
	UpdateService(ctx context.Context, slug string, req *content.UpdateServiceRequest) (*content.Service, error)
	DeleteService(ctx context.Context, slug string) error

	CreateTool(ctx context.Context, req *content.CreateToolRequest) (*content.Tool, error)
	UpdateTool(ctx context.Context, id uuid.UUID, req *content.UpdateToolRequest) (*content.Tool, error)
	DeleteTool(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, req *content.CreateCategoryRequest) (*content.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateTag(ctx context.Context, req *content.CreateTagRequest) (*content.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}
