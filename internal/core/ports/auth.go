package ports

import (
	"context"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/auth"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, token string) error
}

// TokenBlacklist records revoked access tokens until they would have expired anyway.
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}
