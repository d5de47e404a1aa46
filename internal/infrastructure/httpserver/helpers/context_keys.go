package helpers

import (
	"github.com/labstack/echo/v4"

	"github.com/devillabs/cms-api/internal/core/domain/auth"
)

type ctxKey string

const (
	keyAdminClaims ctxKey = "admin_claims"
	keyAccessToken ctxKey = "access_token"
)

func SetAdminClaims(c echo.Context, claims *auth.Claims) { c.Set(string(keyAdminClaims), claims) }
func GetAdminClaimsRaw(c echo.Context) (*auth.Claims, bool) {
	v := c.Get(string(keyAdminClaims))
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func SetAccessToken(c echo.Context, token string) { c.Set(string(keyAccessToken), token) }
func GetAccessTokenRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyAccessToken))
	s, ok := v.(string)
	return s, ok
}
