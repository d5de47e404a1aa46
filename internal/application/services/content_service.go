package services

import (
	"context"
	"fmt"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ContentRepositories groups the stores ContentService reads and writes.
type ContentRepositories struct {
	Blogs    ports.BlogRepository
	Projects ports.ProjectRepository
	Services ports.ServiceRepository
	Tools    ports.ToolRepository
	Taxonomy ports.TaxonomyRepository
	Stats    ports.StatsRepository
}

// ContentService serves the public site and the admin CMS.
type ContentService struct {
	repos  ContentRepositories
	now    func() time.Time
	logger *logrus.Logger
}

func NewContentService(repos ContentRepositories, logger *logrus.Logger) *ContentService {
	return &ContentService{repos: repos, now: time.Now, logger: logger}
}

func (s *ContentService) ListBlogs(ctx context.Context, f content.BlogFilter) ([]*content.Blog, error) {
	f.PublishedOnly = true
	f.Skip, f.Limit = normalizePage(f.Skip, f.Limit)
	return s.repos.Blogs.List(ctx, f)
}

// GetPublishedBlog returns a published post and counts the view.
func (s *ContentService) GetPublishedBlog(ctx context.Context, slug string) (*content.Blog, error) {
	b, err := s.repos.Blogs.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !b.Published {
		return nil, content.ErrNotFound
	}
	views, err := s.repos.Blogs.IncrementViews(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("increment blog views: %w", err)
	}
	b.Views = views
	return b, nil
}

func (s *ContentService) LikeBlog(ctx context.Context, slug string) (int, error) {
	return s.repos.Blogs.IncrementLikes(ctx, slug)
}

func (s *ContentService) ListProjects(ctx context.Context, f content.ProjectFilter) ([]*content.Project, error) {
	f.PublishedOnly = true
	f.Skip, f.Limit = normalizePage(f.Skip, f.Limit)
	return s.repos.Projects.List(ctx, f)
}

func (s *ContentService) GetPublishedProject(ctx context.Context, slug string) (*content.Project, error) {
	p, err := s.repos.Projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, content.ErrNotFound
	}
	views, err := s.repos.Projects.IncrementViews(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("increment project views: %w", err)
	}
	p.Views = views
	return p, nil
}

func (s *ContentService) ListServices(ctx context.Context, f content.ServiceFilter) ([]*content.Service, error) {
	return s.repos.Services.List(ctx, f)
}

func (s *ContentService) GetActiveService(ctx context.Context, slug string) (*content.Service, error) {
	svc, err := s.repos.Services.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, content.ErrNotFound
	}
	return svc, nil
}

func (s *ContentService) ListTools(ctx context.Context, f content.ToolFilter) ([]*content.Tool, error) {
	return s.repos.Tools.List(ctx, f)
}

func (s *ContentService) GetActiveTool(ctx context.Context, slug string) (*content.Tool, error) {
	t, err := s.repos.Tools.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, content.ErrNotFound
	}
	views, err := s.repos.Tools.IncrementViews(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("increment tool views: %w", err)
	}
	t.Views = views
	return t, nil
}

func (s *ContentService) ClickTool(ctx context.Context, slug string) (int, error) {
	return s.repos.Tools.IncrementClicks(ctx, slug)
}

func (s *ContentService) ListCategories(ctx context.Context) ([]*content.Category, error) {
	return s.repos.Taxonomy.ListCategories(ctx)
}

func (s *ContentService) ListTags(ctx context.Context) ([]*content.Tag, error) {
	return s.repos.Taxonomy.ListTags(ctx)
}

func (s *ContentService) Stats(ctx context.Context) (*content.Stats, error) {
	return s.repos.Stats.GetStats(ctx)
}

// uniqueSlug slugifies title and, if the slug is taken, appends a UTC timestamp.
func (s *ContentService) uniqueSlug(ctx context.Context, title string, exists func(context.Context, string) (bool, error)) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "item"
	}
	taken, err := exists(ctx, base)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if !taken {
		return base, nil
	}
	return base + "-" + s.now().UTC().Format("20060102150405"), nil
}

func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return skip, limit
}
