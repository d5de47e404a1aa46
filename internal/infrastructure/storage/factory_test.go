package storage

import (
	"testing"
	"time"

	"github.com/devillabs/cms-api/configs"
	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/stretchr/testify/require"
)

func TestNewObjectStoreFallsBackToLocal(t *testing.T) {
	for _, conn := range []string{"", "your_azure_connection_string_here"} {
		s, err := NewObjectStore(&configs.StorageConfig{
			AzureConnectionString: conn,
			LocalDir:              t.TempDir(),
			LocalURLPrefix:        "/uploads",
			Timeout:               time.Second,
		}, nil)
		require.NoError(t, err)
		require.Equal(t, media.BackendLocal, s.Backend())
	}
}
