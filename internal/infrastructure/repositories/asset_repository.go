package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/devillabs/cms-api/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const assetColumns = `id, filename, original_filename, file_type, file_size, storage_url, blob_name, container_name,
	thumbnail_url, medium_url, large_url, width, height, alt_text, used_in, used_in_id, created_at`

// AssetRepository implements ports.AssetRepository on PostgreSQL.
type AssetRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewAssetRepository(database *db.Database, logger *logrus.Logger) *AssetRepository {
	return &AssetRepository{db: database, logger: logger}
}

func (r *AssetRepository) Create(ctx context.Context, a *media.Asset) error {
	_, err := r.db.DB.NamedExecContext(ctx, `
		INSERT INTO assets (`+assetColumns+`)
		VALUES (:id, :filename, :original_filename, :file_type, :file_size, :storage_url, :blob_name, :container_name,
			:thumbnail_url, :medium_url, :large_url, :width, :height, :alt_text, :used_in, :used_in_id, :created_at)`, a)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"blob": a.BlobName}).WithError(err).Error("db: failed to create asset")
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*media.Asset, error) {
	var a media.Asset
	if err := r.db.DB.GetContext(ctx, &a, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, media.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &a, nil
}

func (r *AssetRepository) List(ctx context.Context, limit, offset int) ([]*media.Asset, error) {
	var out []*media.Asset
	err := r.db.DB.SelectContext(ctx, &out,
		`SELECT `+assetColumns+` FROM assets ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return out, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return media.ErrAssetNotFound
	}
	return nil
}
