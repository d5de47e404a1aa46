package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devillabs/cms-api/internal/application/services"
	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAssetService_UploadPersistsRow(t *testing.T) {
	store := mocks.NewObjectStoreFake()
	var saved *media.Asset
	repo := &mocks.AssetRepositoryMock{CreateFn: func(ctx context.Context, a *media.Asset) error {
		saved = a
		return nil
	}}
	svc := services.NewAssetService(services.NewMediaService(store, nil, nil), repo, nil)

	usedIn := uuid.New()
	resp, err := svc.UploadAsset(context.Background(), media.UploadRequest{
		Data: encodeJPEG(t, 400, 300), Filename: "cover.jpg", ContentType: "image/jpeg", Folder: "blog", CreateVariants: true,
	}, ports.AssetMeta{AltText: "cover", UsedIn: "blog", UsedInID: &usedIn})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, saved.ID, resp.ID)
	require.Equal(t, "cover.jpg", saved.OriginalFilename)
	require.Equal(t, "assets", saved.ContainerName)
	require.Equal(t, "cover", saved.AltText)
	require.Equal(t, &usedIn, saved.UsedInID)
	require.NotNil(t, resp.Width)
	require.Equal(t, 400, *resp.Width)
	require.NotEmpty(t, resp.ThumbnailURL)
}

func TestAssetService_UploadCleansStorageWhenRowFails(t *testing.T) {
	store := mocks.NewObjectStoreFake()
	repo := &mocks.AssetRepositoryMock{CreateFn: func(context.Context, *media.Asset) error {
		return errors.New("db down")
	}}
	svc := services.NewAssetService(services.NewMediaService(store, nil, nil), repo, nil)

	_, err := svc.UploadAsset(context.Background(), media.UploadRequest{
		Data: encodeJPEG(t, 400, 300), Filename: "cover.jpg", ContentType: "image/jpeg", CreateVariants: true,
	}, ports.AssetMeta{})
	require.Error(t, err)
	require.Empty(t, store.Names())
}

func TestAssetService_DeleteKeepsRowWhenStorageFails(t *testing.T) {
	store := mocks.NewObjectStoreFake()
	store.DeleteErr = func(string) error { return errors.New("forbidden") }
	id := uuid.New()
	deleted := false
	repo := &mocks.AssetRepositoryMock{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*media.Asset, error) {
			return &media.Asset{ID: got, BlobName: "blog/x.jpg"}, nil
		},
		DeleteFn: func(context.Context, uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := services.NewAssetService(services.NewMediaService(store, nil, nil), repo, nil)

	require.Error(t, svc.DeleteAsset(context.Background(), id))
	require.False(t, deleted)

	store.DeleteErr = nil
	require.NoError(t, svc.DeleteAsset(context.Background(), id))
	require.True(t, deleted)
}

func TestAssetService_SignedURL(t *testing.T) {
	store := mocks.NewObjectStoreFake()
	repo := &mocks.AssetRepositoryMock{GetByIDFn: func(ctx context.Context, id uuid.UUID) (*media.Asset, error) {
		return &media.Asset{ID: id, BlobName: "general/a.png"}, nil
	}}
	svc := services.NewAssetService(services.NewMediaService(store, nil, nil), repo, nil)

	u, err := svc.SignedURL(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(u, "general/a.png?se=3600"))

	svc = services.NewAssetService(services.NewMediaService(store, nil, nil), &mocks.AssetRepositoryMock{}, nil)
	_, err = svc.SignedURL(context.Background(), uuid.New(), 0)
	require.ErrorIs(t, err, media.ErrAssetNotFound)
}

func TestAssetService_ListAssetsClampsLimit(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mocks.AssetRepositoryMock{ListFn: func(ctx context.Context, limit, offset int) ([]*media.Asset, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}}
	svc := services.NewAssetService(services.NewMediaService(mocks.NewObjectStoreFake(), nil, nil), repo, nil)
	_, err := svc.ListAssets(context.Background(), 1000, -1)
	require.NoError(t, err)
	require.Equal(t, 100, gotLimit)
	require.Equal(t, 0, gotOffset)
}
