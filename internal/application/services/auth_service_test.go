package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	config "github.com/devillabs/cms-api/configs"
	"github.com/devillabs/cms-api/internal/application/services"
	"github.com/devillabs/cms-api/internal/core/domain/auth"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, blacklist *mocks.TokenBlacklistMock) *services.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	var bl ports.TokenBlacklist
	if blacklist != nil {
		bl = blacklist
	}
	return services.NewAuthService(
		&config.AdminConfig{Username: "admin", PasswordHash: string(hash)},
		&config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour},
		bl, nil,
	)
}

func memoryBlacklist() *mocks.TokenBlacklistMock {
	var mu sync.Mutex
	revoked := map[string]time.Time{}
	return &mocks.TokenBlacklistMock{
		RevokeFn: func(ctx context.Context, h string, exp time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			revoked[h] = exp
			return nil
		},
		IsRevokedFn: func(ctx context.Context, h string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			_, ok := revoked[h]
			return ok, nil
		},
	}
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	svc := newAuthService(t, memoryBlacklist())
	ctx := context.Background()

	tok, err := svc.Login(ctx, &auth.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	require.Equal(t, "bearer", tok.TokenType)
	require.EqualValues(t, 3600, tok.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Subject)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t, nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, &auth.LoginRequest{Username: "admin", Password: "wrong"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.Login(ctx, &auth.LoginRequest{Username: "root", Password: "s3cret"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_ValidateRejectsForeignTokens(t *testing.T) {
	svc := newAuthService(t, nil)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), forged)
	require.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.ValidateToken(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc := newAuthService(t, memoryBlacklist())
	ctx := context.Background()

	tok, err := svc.Login(ctx, &auth.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, tok.AccessToken))

	_, err = svc.ValidateToken(ctx, tok.AccessToken)
	require.ErrorIs(t, err, auth.ErrTokenRevoked)
	// logging out twice is harmless
	require.NoError(t, svc.Logout(ctx, tok.AccessToken))
}

func TestAuthService_BlacklistErrorFailsValidation(t *testing.T) {
	bl := &mocks.TokenBlacklistMock{
		IsRevokedFn: func(context.Context, string) (bool, error) { return false, errors.New("redis down") },
	}
	svc := newAuthService(t, bl)
	ctx := context.Background()

	tok, err := svc.Login(ctx, &auth.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(ctx, tok.AccessToken)
	require.Error(t, err)
}

func TestTokenHashIsStable(t *testing.T) {
	require.Equal(t, services.TokenHash("abc"), services.TokenHash("abc"))
	require.Len(t, services.TokenHash("abc"), 64)
}
