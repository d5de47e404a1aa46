package storage

import (
	"context"

	"github.com/devillabs/cms-api/configs"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Store is an ObjectStore that can also report its own reachability.
type Store interface {
	ports.ObjectStore
	Ping(ctx context.Context) error
}

// NewObjectStore selects Azure Blob when a real connection string is configured,
// otherwise the local uploads directory.
func NewObjectStore(cfg *configs.StorageConfig, logger *logrus.Logger) (Store, error) {
	if IsConfigured(cfg.AzureConnectionString) {
		s, err := NewAzureBlobStore(cfg.AzureConnectionString, cfg.ContainerName, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		if logger != nil {
			logger.WithFields(logrus.Fields{"container": cfg.ContainerName}).Info("using Azure Blob storage")
		}
		return s, nil
	}
	s, err := NewLocalStore(cfg.LocalDir, cfg.LocalURLPrefix)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.WithFields(logrus.Fields{"dir": cfg.LocalDir}).Warn("Azure storage not configured, using local uploads directory")
	}
	return s, nil
}
