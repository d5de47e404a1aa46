package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const projectColumns = `p.id, p.title, p.slug, p.description, p.long_description, p.featured_image, p.thumbnail_image,
	p.demo_video_url, p.gallery_images, p.demo_url, p.github_url, p.live_url, p.tech_stack, p.client, p.duration,
	p.team_size, p.stars, p.forks, p.views, p.published, p.featured, p.status, p.category_id,
	p.created_at, p.updated_at, p.completed_at`

// ProjectRepository implements ports.ProjectRepository on PostgreSQL.
type ProjectRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewProjectRepository(database *db.Database, logger *logrus.Logger) *ProjectRepository {
	return &ProjectRepository{db: database, logger: logger}
}

func (r *ProjectRepository) Create(ctx context.Context, p *content.Project) error {
	query := `
		INSERT INTO projects (id, title, slug, description, long_description, featured_image, thumbnail_image,
			demo_video_url, gallery_images, demo_url, github_url, live_url, tech_stack, client, duration, team_size,
			stars, forks, published, featured, status, category_id, created_at, updated_at, completed_at)
		VALUES (:id, :title, :slug, :description, :long_description, :featured_image, :thumbnail_image,
			:demo_video_url, :gallery_images, :demo_url, :github_url, :live_url, :tech_stack, :client, :duration, :team_size,
			:stars, :forks, :published, :featured, :status, :category_id, :created_at, :updated_at, :completed_at)`
	err := withTx(ctx, r.db.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
			return err
		}
		return replaceTags(ctx, tx, "project_tags", "project_id", p.ID, p.TagIDs)
	})
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"slug": p.Slug}).WithError(err).Error("db: failed to create project")
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *content.Project) error {
	query := `
		UPDATE projects SET title = :title, slug = :slug, description = :description, long_description = :long_description,
			featured_image = :featured_image, thumbnail_image = :thumbnail_image, demo_video_url = :demo_video_url,
			gallery_images = :gallery_images, demo_url = :demo_url, github_url = :github_url, live_url = :live_url,
			tech_stack = :tech_stack, client = :client, duration = :duration, team_size = :team_size,
			stars = :stars, forks = :forks, published = :published, featured = :featured, status = :status,
			category_id = :category_id, updated_at = :updated_at, completed_at = :completed_at
		WHERE id = :id`
	err := withTx(ctx, r.db.DB, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, query, p)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return content.ErrNotFound
		}
		return replaceTags(ctx, tx, "project_tags", "project_id", p.ID, p.TagIDs)
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return err
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"project_id": p.ID}).WithError(err).Error("db: failed to update project")
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*content.Project, error) {
	var p content.Project
	err := r.db.DB.GetContext(ctx, &p, `SELECT `+projectColumns+` FROM projects p WHERE p.slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by slug: %w", err)
	}
	tags, err := loadTags(ctx, r.db.DB, "project_tags", "project_id", []uuid.UUID{p.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load project tags: %w", err)
	}
	p.TagIDs = tags[p.ID]
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context, f content.ProjectFilter) ([]*content.Project, error) {
	var w whereBuilder
	if f.PublishedOnly {
		w.add("p.published = TRUE")
	}
	if f.Category != "" {
		w.add("EXISTS (SELECT 1 FROM categories c WHERE c.id = p.category_id AND c.slug = ?)", f.Category)
	}
	if f.Tag != "" {
		w.add("EXISTS (SELECT 1 FROM project_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.project_id = p.id AND t.slug = ?)", f.Tag)
	}
	if f.Status != "" {
		w.add("p.status = ?", f.Status)
	}
	if f.Featured != nil {
		w.add("p.featured = ?", *f.Featured)
	}
	query := `SELECT ` + projectColumns + ` FROM projects p` + w.String() +
		` ORDER BY p.created_at DESC LIMIT ? OFFSET ?`
	args := append(w.args, f.Limit, f.Skip)

	var projects []*content.Project
	if err := r.db.DB.SelectContext(ctx, &projects, r.db.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	ids := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	tags, err := loadTags(ctx, r.db.DB, "project_tags", "project_id", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load project tags: %w", err)
	}
	for _, p := range projects {
		p.TagIDs = tags[p.ID]
	}
	return projects, nil
}

func (r *ProjectRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1)`, slug)
	return exists, err
}

func (r *ProjectRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.db.DB.GetContext(ctx, &views, `UPDATE projects SET views = views + 1 WHERE id = $1 RETURNING views`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, content.ErrNotFound
	}
	return views, err
}
