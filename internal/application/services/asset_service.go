package services

import (
	"context"
	"fmt"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AssetService runs uploads through the media pipeline and keeps the asset table in step.
type AssetService struct {
	media  ports.MediaService
	repo   ports.AssetRepository
	now    func() time.Time
	logger *logrus.Logger
}

func NewAssetService(mediaSvc ports.MediaService, repo ports.AssetRepository, logger *logrus.Logger) *AssetService {
	return &AssetService{media: mediaSvc, repo: repo, now: time.Now, logger: logger}
}

func (s *AssetService) UploadAsset(ctx context.Context, req media.UploadRequest, meta ports.AssetMeta) (*media.UploadResponse, error) {
	set, err := s.media.Upload(ctx, req)
	if err != nil {
		return nil, err
	}
	a := &media.Asset{
		ID:               uuid.New(),
		Filename:         set.GeneratedName,
		OriginalFilename: req.Filename,
		FileType:         req.ContentType,
		FileSize:         int64(len(req.Data)),
		StorageURL:       set.Original,
		BlobName:         set.BlobName,
		ContainerName:    s.media.Container(),
		ThumbnailURL:     set.Thumbnail,
		MediumURL:        set.Medium,
		LargeURL:         set.Large,
		AltText:          meta.AltText,
		UsedIn:           meta.UsedIn,
		UsedInID:         meta.UsedInID,
		CreatedAt:        s.now().UTC(),
	}
	if set.Width > 0 {
		w, h := set.Width, set.Height
		a.Width, a.Height = &w, &h
	}
	if err := s.repo.Create(ctx, a); err != nil {
		// Keep storage and table consistent when the row cannot be written.
		if !s.media.DeleteVariantSet(context.WithoutCancel(ctx), set.BlobName) && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"blob": set.BlobName}).Warn("orphaned upload left in storage")
		}
		return nil, fmt.Errorf("save asset: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"asset_id": a.ID, "blob": a.BlobName, "backend": s.media.Backend()}).Info("asset uploaded")
	}
	return &media.UploadResponse{
		ID:           a.ID,
		Filename:     a.Filename,
		StorageURL:   a.StorageURL,
		ThumbnailURL: a.ThumbnailURL,
		MediumURL:    a.MediumURL,
		LargeURL:     a.LargeURL,
		FileType:     a.FileType,
		FileSize:     a.FileSize,
		Width:        a.Width,
		Height:       a.Height,
	}, nil
}

func (s *AssetService) ListAssets(ctx context.Context, limit, offset int) ([]*media.Asset, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *AssetService) SignedURL(ctx context.Context, id uuid.UUID, expiry time.Duration) (string, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.media.GeneratePresignedURL(a.BlobName, expiry)
}

// DeleteAsset removes stored objects first; the row is kept if storage cleanup fails so it can be retried.
func (s *AssetService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.media.DeleteVariantSet(ctx, a.BlobName) {
		return fmt.Errorf("delete stored objects for %s", a.BlobName)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"asset_id": id, "blob": a.BlobName}).Info("asset deleted")
	}
	return nil
}
