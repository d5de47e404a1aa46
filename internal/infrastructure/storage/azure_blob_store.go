package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"github.com/devillabs/cms-api/internal/core/domain/media"
)

// AzureBlobStore implements ports.ObjectStore on an Azure Blob Storage container.
type AzureBlobStore struct {
	client    *azblob.Client
	container string
	conn      string
	now       func() time.Time
}

// NewAzureBlobStore builds a client from conn. Retries are disabled; callers own retry policy.
func NewAzureBlobStore(conn, container string, timeout time.Duration) (*AzureBlobStore, error) {
	opts := &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1, TryTimeout: timeout},
		},
	}
	client, err := azblob.NewClientFromConnectionString(conn, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", media.ErrStorageConfig, err)
	}
	return &AzureBlobStore{client: client, container: container, conn: conn, now: time.Now}, nil
}

func (s *AzureBlobStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	opts := &azblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}
	if _, err := s.client.UploadBuffer(ctx, s.container, name, data, opts); err != nil {
		return "", fmt.Errorf("upload blob %s: %w", name, err)
	}
	return s.blobURL(name), nil
}

func (s *AzureBlobStore) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteBlob(ctx, s.container, name, nil)
	if err == nil {
		return nil
	}
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return media.ErrObjectNotFound
	}
	return fmt.Errorf("delete blob %s: %w", name, err)
}

// SignedURL returns a read-only HTTPS SAS URL. Signing is local; no request is made.
func (s *AzureBlobStore) SignedURL(name string, expiry time.Duration) (string, error) {
	account, key, err := AccountCredentials(s.conn)
	if err != nil {
		return "", err
	}
	cred, err := azblob.NewSharedKeyCredential(account, key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", media.ErrStorageConfig, err)
	}
	qp, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		ExpiryTime:    s.now().UTC().Add(expiry),
		Permissions:   (&sas.BlobPermissions{Read: true}).String(),
		ContainerName: s.container,
		BlobName:      name,
	}.SignWithSharedKey(cred)
	if err != nil {
		return "", fmt.Errorf("%w: sign %s: %v", media.ErrStorageConfig, name, err)
	}
	return s.blobURL(name) + "?" + qp.Encode(), nil
}

func (s *AzureBlobStore) Backend() media.Backend { return media.BackendAzure }
func (s *AzureBlobStore) Container() string      { return s.container }

// Ping checks that the container is reachable.
func (s *AzureBlobStore) Ping(ctx context.Context) error {
	_, err := s.client.ServiceClient().NewContainerClient(s.container).GetProperties(ctx, nil)
	return err
}

// blobURL escapes each path segment but keeps the folder separators readable.
func (s *AzureBlobStore) blobURL(name string) string {
	segs := strings.Split(name, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(s.client.URL(), "/") + "/" + url.PathEscape(s.container) + "/" + strings.Join(segs, "/")
}
