package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"path"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/internal/infrastructure/imaging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const maxStemLength = 100

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// MediaService stores an uploaded image and its resized variants through an ObjectStore.
type MediaService struct {
	store           ports.ObjectStore
	timeout         time.Duration
	resizeSlots     *semaphore.Weighted
	variantFailures *prometheus.CounterVec
	now             func() time.Time
	logger          *logrus.Logger
}

type MediaServiceConfig struct {
	// StorageTimeout bounds each store call. Defaults to 10s.
	StorageTimeout time.Duration
	// MaxConcurrentResizes bounds CPU-bound resize work process-wide. Defaults to GOMAXPROCS.
	MaxConcurrentResizes int
	// VariantFailures is incremented with the variant name on each failed derivative.
	VariantFailures *prometheus.CounterVec
	Clock           func() time.Time
}

func NewMediaService(store ports.ObjectStore, cfg *MediaServiceConfig, logger *logrus.Logger) *MediaService {
	s := &MediaService{
		store:   store,
		timeout: 10 * time.Second,
		now:     time.Now,
		logger:  logger,
	}
	slots := runtime.GOMAXPROCS(0)
	if cfg != nil {
		if cfg.StorageTimeout > 0 {
			s.timeout = cfg.StorageTimeout
		}
		if cfg.MaxConcurrentResizes > 0 {
			slots = cfg.MaxConcurrentResizes
		}
		if cfg.Clock != nil {
			s.now = cfg.Clock
		}
		s.variantFailures = cfg.VariantFailures
	}
	s.resizeSlots = semaphore.NewWeighted(int64(slots))
	return s
}

func (s *MediaService) Backend() media.Backend { return s.store.Backend() }
func (s *MediaService) Container() string      { return s.store.Container() }

// Upload stores the original at {folder}/{name} and, for images, the thumbnail,
// medium and large derivatives under {folder}/{variant dir}/{name}.
func (s *MediaService) Upload(ctx context.Context, req media.UploadRequest) (*media.UploadVariantSet, error) {
	name := GenerateStorageName(req.Filename, req.Data, s.now())
	blobName := path.Join(SanitizeFolder(req.Folder), name)

	originalURL, err := s.put(ctx, blobName, req.Data, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store original: %w", err)
	}
	set := &media.UploadVariantSet{
		Original:      originalURL,
		BlobName:      blobName,
		GeneratedName: name,
	}
	if !req.CreateVariants || !strings.HasPrefix(req.ContentType, "image/") {
		return set, nil
	}

	if err := s.resizeSlots.Acquire(ctx, 1); err != nil {
		return set, nil
	}
	img, format, err := imaging.Decode(req.Data)
	s.resizeSlots.Release(1)
	if err != nil {
		s.logVariantFailure(blobName, "all", err)
		return set, nil
	}
	b := img.Bounds()
	set.Width, set.Height = b.Dx(), b.Dy()

	urls := make([]string, len(media.Variants))
	var g errgroup.Group
	for i, vs := range media.Variants {
		g.Go(func() error {
			u, err := s.storeVariant(ctx, img, format, blobName, vs, req.ContentType)
			if err != nil {
				s.logVariantFailure(blobName, vs.Name, err)
				return nil
			}
			urls[i] = u
			return nil
		})
	}
	_ = g.Wait()

	for i, vs := range media.Variants {
		if urls[i] != "" {
			set.SetVariant(vs.Name, urls[i])
		}
	}
	return set, nil
}

func (s *MediaService) storeVariant(ctx context.Context, img image.Image, format, blobName string, vs media.VariantSpec, contentType string) (string, error) {
	if err := s.resizeSlots.Acquire(ctx, 1); err != nil {
		return "", err
	}
	data, err := imaging.ResizeEncoded(img, format, vs.Width)
	s.resizeSlots.Release(1)
	if err != nil {
		return "", err
	}
	return s.put(ctx, media.VariantPath(blobName, vs), data, contentType)
}

// DeleteVariantSet removes the original and its three derivatives. Every delete is attempted;
// missing objects count as deleted. It reports false only if some delete failed.
func (s *MediaService) DeleteVariantSet(ctx context.Context, blobName string) bool {
	names := []string{blobName}
	for _, vs := range media.Variants {
		names = append(names, media.VariantPath(blobName, vs))
	}
	ok := true
	for _, name := range names {
		dctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.store.Delete(dctx, name)
		cancel()
		if err == nil || errors.Is(err, media.ErrObjectNotFound) {
			continue
		}
		ok = false
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"blob": name}).WithError(err).Error("failed to delete stored object")
		}
	}
	return ok
}

// GeneratePresignedURL returns a time-limited read URL. Non-positive expiry means one hour.
func (s *MediaService) GeneratePresignedURL(blobName string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = media.DefaultPresignExpiry
	}
	return s.store.SignedURL(blobName, expiry)
}

func (s *MediaService) put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.Put(ctx, name, data, contentType)
}

func (s *MediaService) logVariantFailure(blobName, variant string, err error) {
	if s.variantFailures != nil {
		s.variantFailures.WithLabelValues(variant).Inc()
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"blob": blobName, "variant": variant}).WithError(err).Warn("image variant skipped")
	}
}

// GenerateStorageName builds "{stem}_{YYYYMMDD_HHMMSS}_{micros}_{md5[:8]}{ext}".
// The stem keeps only [a-zA-Z0-9_-] and is capped at 100 characters.
func GenerateStorageName(filename string, data []byte, now time.Time) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "." {
		ext = ""
	}
	if ext != "" {
		ext = "." + strings.ToLower(unsafeNameChars.ReplaceAllString(ext[1:], ""))
		if ext == "." {
			ext = ""
		}
	}

	stem = unsafeNameChars.ReplaceAllString(stem, "_")
	if r := []rune(stem); len(r) > maxStemLength {
		stem = string(r[:maxStemLength])
	}
	if stem == "" {
		stem = "upload"
	}

	sum := md5.Sum(data)
	now = now.UTC()
	return fmt.Sprintf("%s_%s_%06d_%s%s",
		stem, now.Format("20060102_150405"), now.Nanosecond()/1000, hex.EncodeToString(sum[:])[:8], ext)
}

// SanitizeFolder cleans a caller-supplied folder into slash-separated safe segments.
func SanitizeFolder(folder string) string {
	var segs []string
	for _, seg := range strings.Split(strings.ReplaceAll(folder, "\\", "/"), "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		segs = append(segs, unsafeNameChars.ReplaceAllString(seg, "_"))
	}
	if len(segs) == 0 {
		return media.DefaultFolder
	}
	return strings.Join(segs, "/")
}
