package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	config "github.com/devillabs/cms-api/configs"
	"github.com/devillabs/cms-api/internal/core/domain/auth"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single configured CMS administrator.
type AuthService struct {
	admin     *config.AdminConfig
	jwtConfig *config.JWTConfig
	blacklist ports.TokenBlacklist
	now       func() time.Time
	logger    *logrus.Logger
}

// NewAuthService builds the admin authenticator. blacklist may be nil, in which case logout is a no-op.
func NewAuthService(admin *config.AdminConfig, jwtConfig *config.JWTConfig, blacklist ports.TokenBlacklist, logger *logrus.Logger) *AuthService {
	return &AuthService{admin: admin, jwtConfig: jwtConfig, blacklist: blacklist, now: time.Now, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"username": req.Username}).Warn("admin login failed")
		}
		return nil, auth.ErrInvalidCredentials
	}

	now := s.now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.admin.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &auth.TokenResponse{
		AccessToken: token,
		TokenType:   auth.TokenTypeBearer,
		ExpiresIn:   int64(s.jwtConfig.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || !token.Valid {
		return nil, auth.ErrInvalidToken
	}
	if claims.Subject != s.admin.Username {
		return nil, auth.ErrInvalidToken
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.IsRevoked(ctx, TokenHash(tokenString))
		if err != nil {
			return nil, fmt.Errorf("check token blacklist: %w", err)
		}
		if revoked {
			return nil, auth.ErrTokenRevoked
		}
	}
	return claims, nil
}

// Logout revokes token until its own expiry.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrTokenRevoked) {
			return nil
		}
		return err
	}
	if s.blacklist == nil {
		return nil
	}
	expiresAt := s.now().Add(s.jwtConfig.AccessTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.blacklist.Revoke(ctx, TokenHash(tokenString), expiresAt)
}

// TokenHash is the blacklist key for a raw token.
func TokenHash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
