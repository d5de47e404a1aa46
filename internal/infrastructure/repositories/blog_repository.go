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

const blogColumns = `b.id, b.title, b.slug, b.excerpt, b.content, b.author, b.featured_image, b.thumbnail_image,
	b.read_time, b.views, b.likes, b.meta_title, b.meta_description, b.meta_keywords, b.published, b.featured,
	b.category_id, b.created_at, b.updated_at, b.published_at`

// BlogRepository implements ports.BlogRepository on PostgreSQL.
type BlogRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewBlogRepository(database *db.Database, logger *logrus.Logger) *BlogRepository {
	return &BlogRepository{db: database, logger: logger}
}

func (r *BlogRepository) Create(ctx context.Context, b *content.Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, excerpt, content, author, featured_image, thumbnail_image, read_time,
			meta_title, meta_description, meta_keywords, published, featured, category_id, created_at, updated_at, published_at)
		VALUES (:id, :title, :slug, :excerpt, :content, :author, :featured_image, :thumbnail_image, :read_time,
			:meta_title, :meta_description, :meta_keywords, :published, :featured, :category_id, :created_at, :updated_at, :published_at)`
	err := withTx(ctx, r.db.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, b); err != nil {
			return err
		}
		return replaceTags(ctx, tx, "blog_tags", "blog_id", b.ID, b.TagIDs)
	})
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"slug": b.Slug}).WithError(err).Error("db: failed to create blog")
		}
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, b *content.Blog) error {
	query := `
		UPDATE blogs SET title = :title, slug = :slug, excerpt = :excerpt, content = :content, author = :author,
			featured_image = :featured_image, thumbnail_image = :thumbnail_image, read_time = :read_time,
			meta_title = :meta_title, meta_description = :meta_description, meta_keywords = :meta_keywords,
			published = :published, featured = :featured, category_id = :category_id,
			updated_at = :updated_at, published_at = :published_at
		WHERE id = :id`
	err := withTx(ctx, r.db.DB, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, query, b)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return content.ErrNotFound
		}
		return replaceTags(ctx, tx, "blog_tags", "blog_id", b.ID, b.TagIDs)
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return err
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"blog_id": b.ID}).WithError(err).Error("db: failed to update blog")
		}
		return fmt.Errorf("failed to update blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*content.Blog, error) {
	var b content.Blog
	err := r.db.DB.GetContext(ctx, &b, `SELECT `+blogColumns+` FROM blogs b WHERE b.slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}
	tags, err := loadTags(ctx, r.db.DB, "blog_tags", "blog_id", []uuid.UUID{b.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load blog tags: %w", err)
	}
	b.TagIDs = tags[b.ID]
	return &b, nil
}

func (r *BlogRepository) List(ctx context.Context, f content.BlogFilter) ([]*content.Blog, error) {
	var w whereBuilder
	if f.PublishedOnly {
		w.add("b.published = TRUE")
	}
	if f.Category != "" {
		w.add("EXISTS (SELECT 1 FROM categories c WHERE c.id = b.category_id AND c.slug = ?)", f.Category)
	}
	if f.Tag != "" {
		w.add("EXISTS (SELECT 1 FROM blog_tags bt JOIN tags t ON t.id = bt.tag_id WHERE bt.blog_id = b.id AND t.slug = ?)", f.Tag)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add("(b.title ILIKE ? OR b.excerpt ILIKE ? OR b.content ILIKE ?)", p, p, p)
	}
	if f.Featured != nil {
		w.add("b.featured = ?", *f.Featured)
	}
	query := `SELECT ` + blogColumns + ` FROM blogs b` + w.String() +
		` ORDER BY b.published_at DESC NULLS LAST, b.created_at DESC LIMIT ? OFFSET ?`
	args := append(w.args, f.Limit, f.Skip)

	var blogs []*content.Blog
	if err := r.db.DB.SelectContext(ctx, &blogs, r.db.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	ids := make([]uuid.UUID, len(blogs))
	for i, b := range blogs {
		ids[i] = b.ID
	}
	tags, err := loadTags(ctx, r.db.DB, "blog_tags", "blog_id", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog tags: %w", err)
	}
	for _, b := range blogs {
		b.TagIDs = tags[b.ID]
	}
	return blogs, nil
}

func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1)`, slug)
	return exists, err
}

func (r *BlogRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.db.DB.GetContext(ctx, &views, `UPDATE blogs SET views = views + 1 WHERE id = $1 RETURNING views`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, content.ErrNotFound
	}
	return views, err
}

func (r *BlogRepository) IncrementLikes(ctx context.Context, slug string) (int, error) {
	var likes int
	err := r.db.DB.GetContext(ctx, &likes,
		`UPDATE blogs SET likes = likes + 1 WHERE slug = $1 AND published = TRUE RETURNING likes`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, content.ErrNotFound
	}
	return likes, err
}
