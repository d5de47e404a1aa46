package httpserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/devillabs/cms-api/internal/core/domain/media"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/helpers"
)

const maxSignedURLExpiry = 7 * 24 * time.Hour

func (s *Server) uploadFile(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	contentType := fh.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, "File must be an image")
	}
	limit := s.config.MaxUploadBytes
	tooLarge := echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("File size must be less than %dMB", limit/(1024*1024)))
	if limit > 0 && fh.Size > limit {
		return tooLarge
	}

	meta := ports.AssetMeta{AltText: c.FormValue("alt_text"), UsedIn: c.FormValue("used_in")}
	if raw := c.FormValue("used_in_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid used_in_id")
		}
		meta.UsedInID = &id
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read upload")
	}
	defer f.Close()
	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read upload")
	}
	if limit > 0 && int64(len(data)) > limit {
		return tooLarge
	}

	res, err := s.assetSvc.UploadAsset(c.Request().Context(), media.UploadRequest{
		Data:           data,
		Filename:       fh.Filename,
		ContentType:    contentType,
		Folder:         c.FormValue("folder"),
		CreateVariants: true,
	}, meta)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"filename": fh.Filename, "size": len(data)}).WithError(err).Error("upload failed")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) listAssets(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	out, err := s.assetSvc.ListAssets(c.Request().Context(), limit, skip)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) assetSignedURL(c echo.Context) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	expiry := media.DefaultPresignExpiry
	if raw := c.QueryParam("expiry"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 || time.Duration(secs)*time.Second > maxSignedURLExpiry {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid expiry")
		}
		expiry = time.Duration(secs) * time.Second
	}
	url, err := s.assetSvc.SignedURL(c.Request().Context(), id, expiry)
	if err != nil {
		if errors.Is(err, media.ErrStorageConfig) {
			if s.logger != nil {
				s.logger.WithError(err).Error("cannot sign asset URL")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "storage is not configured for signed URLs")
		}
		return s.contentError(c, err, "Asset not found")
	}
	return c.JSON(http.StatusOK, media.SignedURLResponse{URL: url, ExpirySeconds: int(expiry / time.Second)})
}

func (s *Server) deleteAsset(c echo.Context) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.assetSvc.DeleteAsset(c.Request().Context(), id); err != nil {
		return s.contentError(c, err, "Asset not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Asset deleted successfully"})
}
