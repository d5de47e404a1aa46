package services

import (
	"context"
	"fmt"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
)

func (s *ContentService) ListAllBlogs(ctx context.Context, skip, limit int) ([]*content.Blog, error) {
	skip, limit = normalizePage(skip, limit)
	return s.repos.Blogs.List(ctx, content.BlogFilter{Skip: skip, Limit: limit})
}

func (s *ContentService) GetBlog(ctx context.Context, slug string) (*content.Blog, error) {
	return s.repos.Blogs.GetBySlug(ctx, slug)
}

func (s *ContentService) CreateBlog(ctx context.Context, req *content.CreateBlogRequest) (*content.Blog, error) {
	sl, err := s.uniqueSlug(ctx, req.Title, s.repos.Blogs.SlugExists)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	b := &content.Blog{
		ID:              uuid.New(),
		Title:           req.Title,
		Slug:            sl,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Author:          req.Author,
		FeaturedImage:   req.FeaturedImage,
		ThumbnailImage:  req.ThumbnailImage,
		ReadTime:        req.ReadTime,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		Published:       req.Published,
		Featured:        req.Featured,
		CategoryID:      req.CategoryID,
		TagIDs:          req.TagIDs,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if b.Author == "" {
		b.Author = content.DefaultAuthor
	}
	b.MarkPublished(now)
	if err := s.repos.Blogs.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	s.logContentChange("blog", "created", b.Slug)
	return b, nil
}

func (s *ContentService) UpdateBlog(ctx context.Context, sl string, req *content.UpdateBlogRequest) (*content.Blog, error) {
	b, err := s.repos.Blogs.GetBySlug(ctx, sl)
	if err != nil {
		return nil, err
	}
	oldTitle := b.Title
	req.Apply(b)
	if b.Title != oldTitle && slug.Make(b.Title) != b.Slug {
		if b.Slug, err = s.uniqueSlug(ctx, b.Title, s.repos.Blogs.SlugExists); err != nil {
			return nil, err
		}
	}
	b.UpdatedAt = s.now().UTC()
	b.MarkPublished(b.UpdatedAt)
	if err := s.repos.Blogs.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	s.logContentChange("blog", "updated", b.Slug)
	return b, nil
}

func (s *ContentService) DeleteBlog(ctx context.Context, sl string) error {
	b, err := s.repos.Blogs.GetBySlug(ctx, sl)
	if err != nil {
		return err
	}
	if err := s.repos.Blogs.Delete(ctx, b.ID); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	s.logContentChange("blog", "deleted", sl)
	return nil
}

func (s *ContentService) ListAllProjects(ctx context.Context, skip, limit int) ([]*content.Project, error) {
	skip, limit = normalizePage(skip, limit)
	return s.repos.Projects.List(ctx, content.ProjectFilter{Skip: skip, Limit: limit})
}

func (s *ContentService) GetProject(ctx context.Context, slug string) (*content.Project, error) {
	return s.repos.Projects.GetBySlug(ctx, slug)
}

func (s *ContentService) CreateProject(ctx context.Context, req *content.CreateProjectRequest) (*content.Project, error) {
	sl, err := s.uniqueSlug(ctx, req.Title, s.repos.Projects.SlugExists)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	status := req.Status
	if status == "" {
		status = content.ProjectStatusCompleted
	}
	p := &content.Project{
		ID:              uuid.New(),
		Title:           req.Title,
		Slug:            sl,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		FeaturedImage:   req.FeaturedImage,
		ThumbnailImage:  req.ThumbnailImage,
		DemoVideoURL:    req.DemoVideoURL,
		GalleryImages:   req.GalleryImages,
		DemoURL:         req.DemoURL,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		TechStack:       req.TechStack,
		Client:          req.Client,
		Duration:        req.Duration,
		TeamSize:        req.TeamSize,
		Published:       req.Published,
		Featured:        req.Featured,
		Status:          status,
		CategoryID:      req.CategoryID,
		TagIDs:          req.TagIDs,
		CompletedAt:     req.CompletedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repos.Projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.logContentChange("project", "created", p.Slug)
	return p, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, sl string, req *content.UpdateProjectRequest) (*content.Project, error) {
	p, err := s.repos.Projects.GetBySlug(ctx, sl)
	if err != nil {
		return nil, err
	}
	oldTitle := p.Title
	req.Apply(p)
	if p.Title != oldTitle && slug.Make(p.Title) != p.Slug {
		if p.Slug, err = s.uniqueSlug(ctx, p.Title, s.repos.Projects.SlugExists); err != nil {
			return nil, err
		}
	}
	p.UpdatedAt = s.now().UTC()
	if err := s.repos.Projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	s.logContentChange("project", "updated", p.Slug)
	return p, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, sl string) error {
	p, err := s.repos.Projects.GetBySlug(ctx, sl)
	if err != nil {
		return err
	}
	if err := s.repos.Projects.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.logContentChange("project", "deleted", sl)
	return nil
}

func (s *ContentService) ListAllServices(ctx context.Context) ([]*content.Service, error) {
	return s.repos.Services.List(ctx, content.ServiceFilter{})
}

func (s *ContentService) GetService(ctx context.Context, slug string) (*content.Service, error) {
	return s.repos.Services.GetBySlug(ctx, slug)
}

func (s *ContentService) CreateService(ctx context.Context, req *content.CreateServiceRequest) (*content.Service, error) {
	sl, err := s.uniqueSlug(ctx, req.Title, s.repos.Services.SlugExists)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	svc := &content.Service{
		ID:              uuid.New(),
		Title:           req.Title,
		Slug:            sl,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		PriceRange:      req.PriceRange,
		Currency:        req.Currency,
		PricingModel:    req.PricingModel,
		Icon:            req.Icon,
		FeaturedImage:   req.FeaturedImage,
		Features:        req.Features,
		Deliverables:    req.Deliverables,
		Duration:        req.Duration,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Active:          req.Active == nil || *req.Active,
		Featured:        req.Featured,
		SortOrder:       req.SortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if svc.Currency == "" {
		svc.Currency = "USD"
	}
	if err := s.repos.Services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	s.logContentChange("service", "created", svc.Slug)
	return svc, nil
}

func (s *ContentService) UpdateService(ctx context.Context, sl string, req *content.UpdateServiceRequest) (*content.Service, error) {
	svc, err := s.repos.Services.GetBySlug(ctx, sl)
	if err != nil {
		return nil, err
	}
	oldTitle := svc.Title
	req.Apply(svc)
	if svc.Title != oldTitle && slug.Make(svc.Title) != svc.Slug {
		if svc.Slug, err = s.uniqueSlug(ctx, svc.Title, s.repos.Services.SlugExists); err != nil {
			return nil, err
		}
	}
	svc.UpdatedAt = s.now().UTC()
	if err := s.repos.Services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	s.logContentChange("service", "updated", svc.Slug)
	return svc, nil
}

func (s *ContentService) DeleteService(ctx context.Context, sl string) error {
	svc, err := s.repos.Services.GetBySlug(ctx, sl)
	if err != nil {
		return err
	}
	if err := s.repos.Services.Delete(ctx, svc.ID); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	s.logContentChange("service", "deleted", sl)
	return nil
}

func (s *ContentService) CreateTool(ctx context.Context, req *content.CreateToolRequest) (*content.Tool, error) {
	sl, err := s.uniqueSlug(ctx, req.Name, s.repos.Tools.SlugExists)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	t := &content.Tool{
		ID:              uuid.New(),
		Name:            req.Name,
		Slug:            sl,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Logo:            req.Logo,
		Icon:            req.Icon,
		Screenshot:      req.Screenshot,
		WebsiteURL:      req.WebsiteURL,
		DemoURL:         req.DemoURL,
		GithubURL:       req.GithubURL,
		Category:        req.Category,
		TechStack:       req.TechStack,
		Features:        req.Features,
		Pricing:         req.Pricing,
		Price:           req.Price,
		Active:          req.Active == nil || *req.Active,
		Featured:        req.Featured,
		SortOrder:       req.SortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if t.Pricing == "" {
		t.Pricing = "free"
	}
	if err := s.repos.Tools.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}
	s.logContentChange("tool", "created", t.Slug)
	return t, nil
}

func (s *ContentService) UpdateTool(ctx context.Context, id uuid.UUID, req *content.UpdateToolRequest) (*content.Tool, error) {
	t, err := s.repos.Tools.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldName := t.Name
	req.Apply(t)
	if t.Name != oldName && slug.Make(t.Name) != t.Slug {
		if t.Slug, err = s.uniqueSlug(ctx, t.Name, s.repos.Tools.SlugExists); err != nil {
			return nil, err
		}
	}
	t.UpdatedAt = s.now().UTC()
	if err := s.repos.Tools.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update tool: %w", err)
	}
	s.logContentChange("tool", "updated", t.Slug)
	return t, nil
}

func (s *ContentService) DeleteTool(ctx context.Context, id uuid.UUID) error {
	if err := s.repos.Tools.Delete(ctx, id); err != nil {
		return err
	}
	s.logContentChange("tool", "deleted", id.String())
	return nil
}

func (s *ContentService) CreateCategory(ctx context.Context, req *content.CreateCategoryRequest) (*content.Category, error) {
	c := &content.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repos.Taxonomy.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContentService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repos.Taxonomy.DeleteCategory(ctx, id)
}

func (s *ContentService) CreateTag(ctx context.Context, req *content.CreateTagRequest) (*content.Tag, error) {
	t := &content.Tag{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      slug.Make(req.Name),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repos.Taxonomy.CreateTag(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return s.repos.Taxonomy.DeleteTag(ctx, id)
}

func (s *ContentService) logContentChange(kind, action, slug string) {
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"kind": kind, "slug": slug}).Infof("%s %s", kind, action)
	}
}
