package repositories

import (
	"context"
	"fmt"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TaxonomyRepository implements ports.TaxonomyRepository on PostgreSQL.
type TaxonomyRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewTaxonomyRepository(database *db.Database, logger *logrus.Logger) *TaxonomyRepository {
	return &TaxonomyRepository{db: database, logger: logger}
}

func (r *TaxonomyRepository) CreateCategory(ctx context.Context, c *content.Category) error {
	_, err := r.db.DB.NamedExecContext(ctx, `
		INSERT INTO categories (id, name, slug, description, created_at)
		VALUES (:id, :name, :slug, :description, :created_at)`, c)
	if err != nil {
		if isUniqueViolation(err) {
			return content.ErrDuplicateName
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"category": c.Slug}).Info("db: category created")
	}
	return nil
}

func (r *TaxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "categories", id)
}

func (r *TaxonomyRepository) ListCategories(ctx context.Context) ([]*content.Category, error) {
	var out []*content.Category
	if err := r.db.DB.SelectContext(ctx, &out, `SELECT id, name, slug, description, created_at FROM categories ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return out, nil
}

func (r *TaxonomyRepository) CreateTag(ctx context.Context, t *content.Tag) error {
	_, err := r.db.DB.NamedExecContext(ctx, `
		INSERT INTO tags (id, name, slug, created_at) VALUES (:id, :name, :slug, :created_at)`, t)
	if err != nil {
		if isUniqueViolation(err) {
			return content.ErrDuplicateName
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

func (r *TaxonomyRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "tags", id)
}

func (r *TaxonomyRepository) ListTags(ctx context.Context) ([]*content.Tag, error) {
	var out []*content.Tag
	if err := r.db.DB.SelectContext(ctx, &out, `SELECT id, name, slug, created_at FROM tags ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return out, nil
}

// StatsRepository aggregates public counters in one round trip.
type StatsRepository struct {
	db *db.Database
}

func NewStatsRepository(database *db.Database) *StatsRepository {
	return &StatsRepository{db: database}
}

func (r *StatsRepository) GetStats(ctx context.Context) (*content.Stats, error) {
	var s content.Stats
	err := r.db.DB.GetContext(ctx, &s, `
		SELECT
			(SELECT COUNT(*) FROM blogs WHERE published) AS total_blogs,
			(SELECT COUNT(*) FROM projects WHERE published) AS total_projects,
			(SELECT COUNT(*) FROM services WHERE active) AS total_services,
			(SELECT COUNT(*) FROM tools WHERE active) AS total_tools,
			(SELECT COALESCE(SUM(views), 0) FROM blogs) AS blog_views,
			(SELECT COALESCE(SUM(views), 0) FROM projects) AS project_views`)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	s.TotalViews = s.BlogViews + s.ProjectViews
	return &s, nil
}
