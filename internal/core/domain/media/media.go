package media

import (
	"errors"
	"path"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrStorageConfig signals credentials that cannot produce a usable reference (e.g. no signing key).
	ErrStorageConfig = errors.New("storage misconfigured")
	// ErrObjectNotFound is returned by object stores for missing objects.
	ErrObjectNotFound = errors.New("object not found")
	ErrAssetNotFound  = errors.New("asset not found")
	// ErrInvalidObjectName rejects names that escape the storage root.
	ErrInvalidObjectName = errors.New("invalid object name")
)

// DefaultPresignExpiry is the validity of a signed read URL when the caller does not pick one.
const DefaultPresignExpiry = time.Hour

// DefaultFolder is the destination folder when an upload names none.
const DefaultFolder = "general"

// Backend identifies where object bytes live.
type Backend string

const (
	BackendAzure Backend = "azure"
	BackendLocal Backend = "local"
)

// VariantSpec describes one resized derivative of an uploaded image.
type VariantSpec struct {
	Name  string
	Dir   string
	Width int
}

// Variants lists the derivatives in the order they are attempted.
var Variants = []VariantSpec{
	{Name: "thumbnail", Dir: "thumbnails", Width: 300},
	{Name: "medium", Dir: "medium", Width: 800},
	{Name: "large", Dir: "large", Width: 1920},
}

// VariantPath maps an original object name to the name of its derivative:
// "blog/a.jpg" becomes "blog/thumbnails/a.jpg".
func VariantPath(blobName string, vs VariantSpec) string {
	dir, file := path.Split(blobName)
	return path.Join(dir, vs.Dir, file)
}

// UploadRequest is the input to the media pipeline. Size and type checks happen before it is built.
type UploadRequest struct {
	Data           []byte
	Filename       string
	ContentType    string
	Folder         string
	CreateVariants bool
}

// UploadVariantSet is the outcome of one upload. Variant URLs are empty when that variant was not produced.
type UploadVariantSet struct {
	Original      string `json:"url"`
	Thumbnail     string `json:"thumbnail_url,omitempty"`
	Medium        string `json:"medium_url,omitempty"`
	Large         string `json:"large_url,omitempty"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	BlobName      string `json:"blob_name"`
	GeneratedName string `json:"filename"`
}

// SetVariant records the URL of a produced variant.
func (s *UploadVariantSet) SetVariant(name, url string) {
	switch name {
	case "thumbnail":
		s.Thumbnail = url
	case "medium":
		s.Medium = url
	case "large":
		s.Large = url
	}
}

// Asset is the persisted record of an uploaded file.
type Asset struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Filename         string     `json:"filename" db:"filename"`
	OriginalFilename string     `json:"original_filename" db:"original_filename"`
	FileType         string     `json:"file_type" db:"file_type"`
	FileSize         int64      `json:"file_size" db:"file_size"`
	StorageURL       string     `json:"storage_url" db:"storage_url"`
	BlobName         string     `json:"blob_name" db:"blob_name"`
	ContainerName    string     `json:"container_name" db:"container_name"`
	ThumbnailURL     string     `json:"thumbnail_url" db:"thumbnail_url"`
	MediumURL        string     `json:"medium_url" db:"medium_url"`
	LargeURL         string     `json:"large_url" db:"large_url"`
	Width            *int       `json:"width" db:"width"`
	Height           *int       `json:"height" db:"height"`
	AltText          string     `json:"alt_text" db:"alt_text"`
	UsedIn           string     `json:"used_in" db:"used_in"`
	UsedInID         *uuid.UUID `json:"used_in_id" db:"used_in_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// UploadResponse is returned by the admin upload endpoint.
type UploadResponse struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	StorageURL   string    `json:"storage_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	MediumURL    string    `json:"medium_url,omitempty"`
	LargeURL     string    `json:"large_url,omitempty"`
	FileType     string    `json:"file_type"`
	FileSize     int64     `json:"file_size"`
	Width        *int      `json:"width,omitempty"`
	Height       *int      `json:"height,omitempty"`
}

// SignedURLResponse wraps a presigned read URL.
type SignedURLResponse struct {
	URL           string `json:"url"`
	ExpirySeconds int    `json:"expiry_seconds"`
}
