package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/core/domain/media"
)

// contentError maps service errors onto HTTP errors. Unknown errors are logged
// and answered with a generic message.
func (s *Server) contentError(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, content.ErrNotFound), errors.Is(err, media.ErrAssetNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, content.ErrDuplicateName):
		return echo.NewHTTPError(http.StatusConflict, "an item with this name already exists")
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"path": c.Path(), "method": c.Request().Method}).WithError(err).Error("request failed")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
