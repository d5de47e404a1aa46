package ports

import (
	"context"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/google/uuid"
)

// ObjectStore persists named binary objects. Names use forward slashes: "{folder}/{file}".
type ObjectStore interface {
	// Put writes data under name and returns the URL it is reachable at.
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	// Delete removes name. Missing objects return media.ErrObjectNotFound.
	Delete(ctx context.Context, name string) error
	// SignedURL returns a read URL valid for expiry. Stores without signing return a static URL.
	SignedURL(name string, expiry time.Duration) (string, error)
	Backend() media.Backend
	// Container is the bucket/container name, or the base directory for local stores.
	Container() string
}

// MediaService is the upload pipeline: original plus resized variants through an ObjectStore.
type MediaService interface {
	Upload(ctx context.Context, req media.UploadRequest) (*media.UploadVariantSet, error)
	DeleteVariantSet(ctx context.Context, blobName string) bool
	GeneratePresignedURL(blobName string, expiry time.Duration) (string, error)
	Backend() media.Backend
	Container() string
}

// AssetRepository persists uploaded asset records.
type AssetRepository interface {
	Create(ctx context.Context, a *media.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*media.Asset, error)
	List(ctx context.Context, limit, offset int) ([]*media.Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetService coordinates the media pipeline with asset persistence.
type AssetService interface {
	UploadAsset(ctx context.Context, req media.UploadRequest, meta AssetMeta) (*media.UploadResponse, error)
	ListAssets(ctx context.Context, limit, offset int) ([]*media.Asset, error)
	SignedURL(ctx context.Context, id uuid.UUID, expiry time.Duration) (string, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

// AssetMeta is the optional bookkeeping attached to an upload.
type AssetMeta struct {
	AltText  string
	UsedIn   string
	UsedInID *uuid.UUID
}
