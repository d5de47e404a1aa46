package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const serviceColumns = `id, title, slug, description, long_description, price, price_range, currency, pricing_model,
	icon, featured_image, features, deliverables, duration, meta_title, meta_description, active, featured, sort_order,
	created_at, updated_at`

const toolColumns = `id, name, slug, description, long_description, logo, icon, screenshot, website_url, demo_url,
	github_url, category, tech_stack, features, pricing, price, views, clicks, active, featured, sort_order,
	created_at, updated_at`

// ServiceRepository implements ports.ServiceRepository on PostgreSQL.
type ServiceRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewServiceRepository(database *db.Database, logger *logrus.Logger) *ServiceRepository {
	return &ServiceRepository{db: database, logger: logger}
}

func (r *ServiceRepository) Create(ctx context.Context, s *content.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES (:id, :title, :slug, :description, :long_description, :price, :price_range, :currency, :pricing_model,
			:icon, :featured_image, :features, :deliverables, :duration, :meta_title, :meta_description, :active,
			:featured, :sort_order, :created_at, :updated_at)`
	if _, err := r.db.DB.NamedExecContext(ctx, query, s); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"slug": s.Slug}).WithError(err).Error("db: failed to create service")
		}
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *content.Service) error {
	query := `
		UPDATE services SET title = :title, slug = :slug, description = :description, long_description = :long_description,
			price = :price, price_range = :price_range, currency = :currency, pricing_model = :pricing_model,
			icon = :icon, featured_image = :featured_image, features = :features, deliverables = :deliverables,
			duration = :duration, meta_title = :meta_title, meta_description = :meta_description,
			active = :active, featured = :featured, sort_order = :sort_order, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.db.DB.NamedExecContext(ctx, query, s)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "services", id)
}

func (r *ServiceRepository) GetBySlug(ctx context.Context, slug string) (*content.Service, error) {
	var s content.Service
	err := r.db.DB.GetContext(ctx, &s, `SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service by slug: %w", err)
	}
	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, f content.ServiceFilter) ([]*content.Service, error) {
	var w whereBuilder
	if f.ActiveOnly {
		w.add("active = TRUE")
	}
	if f.Featured != nil {
		w.add("featured = ?", *f.Featured)
	}
	query := `SELECT ` + serviceColumns + ` FROM services` + w.String() + ` ORDER BY sort_order ASC, created_at DESC`
	var out []*content.Service
	if err := r.db.DB.SelectContext(ctx, &out, r.db.DB.Rebind(query), w.args...); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return out, nil
}

func (r *ServiceRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM services WHERE slug = $1)`, slug)
	return exists, err
}

// ToolRepository implements ports.ToolRepository on PostgreSQL.
type ToolRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewToolRepository(database *db.Database, logger *logrus.Logger) *ToolRepository {
	return &ToolRepository{db: database, logger: logger}
}

func (r *ToolRepository) Create(ctx context.Context, t *content.Tool) error {
	query := `
		INSERT INTO tools (` + toolColumns + `)
		VALUES (:id, :name, :slug, :description, :long_description, :logo, :icon, :screenshot, :website_url, :demo_url,
			:github_url, :category, :tech_stack, :features, :pricing, :price, :views, :clicks, :active, :featured,
			:sort_order, :created_at, :updated_at)`
	if _, err := r.db.DB.NamedExecContext(ctx, query, t); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"slug": t.Slug}).WithError(err).Error("db: failed to create tool")
		}
		return fmt.Errorf("failed to create tool: %w", err)
	}
	return nil
}

func (r *ToolRepository) Update(ctx context.Context, t *content.Tool) error {
	query := `
		UPDATE tools SET name = :name, slug = :slug, description = :description, long_description = :long_description,
			logo = :logo, icon = :icon, screenshot = :screenshot, website_url = :website_url, demo_url = :demo_url,
			github_url = :github_url, category = :category, tech_stack = :tech_stack, features = :features,
			pricing = :pricing, price = :price, active = :active, featured = :featured, sort_order = :sort_order,
			updated_at = :updated_at
		WHERE id = :id`
	res, err := r.db.DB.NamedExecContext(ctx, query, t)
	if err != nil {
		return fmt.Errorf("failed to update tool: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *ToolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "tools", id)
}

func (r *ToolRepository) GetByID(ctx context.Context, id uuid.UUID) (*content.Tool, error) {
	return r.getOne(ctx, `SELECT `+toolColumns+` FROM tools WHERE id = $1`, id)
}

func (r *ToolRepository) GetBySlug(ctx context.Context, slug string) (*content.Tool, error) {
	return r.getOne(ctx, `SELECT `+toolColumns+` FROM tools WHERE slug = $1`, slug)
}

func (r *ToolRepository) getOne(ctx context.Context, query string, arg interface{}) (*content.Tool, error) {
	var t content.Tool
	if err := r.db.DB.GetContext(ctx, &t, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return &t, nil
}

func (r *ToolRepository) List(ctx context.Context, f content.ToolFilter) ([]*content.Tool, error) {
	var w whereBuilder
	if f.ActiveOnly {
		w.add("active = TRUE")
	}
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Featured != nil {
		w.add("featured = ?", *f.Featured)
	}
	query := `SELECT ` + toolColumns + ` FROM tools` + w.String() + ` ORDER BY sort_order ASC, created_at DESC`
	var out []*content.Tool
	if err := r.db.DB.SelectContext(ctx, &out, r.db.DB.Rebind(query), w.args...); err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return out, nil
}

func (r *ToolRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM tools WHERE slug = $1)`, slug)
	return exists, err
}

func (r *ToolRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.db.DB.GetContext(ctx, &views, `UPDATE tools SET views = views + 1 WHERE id = $1 RETURNING views`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, content.ErrNotFound
	}
	return views, err
}

func (r *ToolRepository) IncrementClicks(ctx context.Context, slug string) (int, error) {
	var clicks int
	err := r.db.DB.GetContext(ctx, &clicks,
		`UPDATE tools SET clicks = clicks + 1 WHERE slug = $1 AND active = TRUE RETURNING clicks`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, content.ErrNotFound
	}
	return clicks, err
}

// deleteByID removes one row from table; table is always a package constant.
func deleteByID(ctx context.Context, database *db.Database, table string, id uuid.UUID) error {
	res, err := database.DB.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}
