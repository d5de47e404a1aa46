package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/devillabs/cms-api/internal/core/domain/auth"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/helpers"
)

func (s *Server) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tokens, err := s.authSvc.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect username or password")
		}
		if s.logger != nil {
			s.logger.WithError(err).Error("admin login failed")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"ip": c.RealIP()}).Info("admin logged in")
	}
	return c.JSON(http.StatusOK, tokens)
}

func (s *Server) logout(c echo.Context) error {
	token, ok := helpers.GetAccessTokenRaw(c)
	if !ok {
		var err error
		if token, err = helpers.GetJWTTokenFromContext(c); err != nil {
			return err
		}
	}
	if err := s.authSvc.Logout(c.Request().Context(), token); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("admin logout failed")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to logout")
	}
	if claims, err := helpers.GetAdminFromContext(c); err == nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"subject": claims.Subject, "ip": c.RealIP()}).Info("admin logged out")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}
