package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/media"
)

// LocalStore implements ports.ObjectStore on a directory served under urlPrefix.
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{root: root, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalStore) Put(ctx context.Context, name string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full, clean, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write %s: %w", clean, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close %s: %w", clean, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("chmod %s: %w", clean, err)
	}
	if err := os.Rename(tmpPath, full); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("move %s into place: %w", clean, err)
	}
	return s.url(clean), nil
}

func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, _, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return media.ErrObjectNotFound
		}
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// SignedURL returns the static path; local URLs never expire.
func (s *LocalStore) SignedURL(name string, _ time.Duration) (string, error) {
	_, clean, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	return s.url(clean), nil
}

func (s *LocalStore) Backend() media.Backend { return media.BackendLocal }
func (s *LocalStore) Container() string      { return s.root }

// Root is the directory files are written under.
func (s *LocalStore) Root() string { return s.root }

// Ping checks the root directory is still present.
func (s *LocalStore) Ping(context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.root)
	}
	return nil
}

func (s *LocalStore) resolve(name string) (full, clean string, err error) {
	slashed := strings.ReplaceAll(name, "\\", "/")
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return "", "", fmt.Errorf("%w: %q", media.ErrInvalidObjectName, name)
		}
	}
	clean = strings.TrimPrefix(path.Clean("/"+slashed), "/")
	if clean == "" {
		return "", "", fmt.Errorf("%w: %q", media.ErrInvalidObjectName, name)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), clean, nil
}

func (s *LocalStore) url(clean string) string {
	return s.urlPrefix + "/" + clean
}
