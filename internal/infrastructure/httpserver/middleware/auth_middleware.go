package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/devillabs/cms-api/internal/core/domain/auth"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/helpers"
)

type JWTMiddleware struct {
	authService ports.AuthService
	logger      *logrus.Logger
}

func NewJWTMiddleware(authService ports.AuthService, logger *logrus.Logger) *JWTMiddleware {
	return &JWTMiddleware{authService: authService, logger: logger}
}

// RequireAdmin rejects requests without a valid, unrevoked admin bearer token.
func (m *JWTMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetJWTTokenFromContext(c)
			if err != nil {
				return err
			}

			claims, err := m.authService.ValidateToken(c.Request().Context(), tokenString)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("JWT validation failed")
				}
				if errors.Is(err, auth.ErrTokenRevoked) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			helpers.SetAdminClaims(c, claims)
			helpers.SetAccessToken(c, tokenString)
			return next(c)
		}
	}
}
