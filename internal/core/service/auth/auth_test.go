package auth_test

import (
	"context"
	"testing"
	"time"

	authadapter "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository"
	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var defaultCfg = config.AuthConfig{
	TokenSecret: "test-secret",
	TokenTTL:    12 * time.Hour,
	SeedSecret:  "seed-me",
}

func newService(t *testing.T, repo *repository.MockAdminRepository) (port.AuthService, *authadapter.BcryptHasher) {
	t.Helper()
	issuer, err := authadapter.NewJWTIssuer(defaultCfg.TokenSecret, defaultCfg.TokenTTL)
	require.NoError(t, err)
	hasher := authadapter.NewBcryptHasher(bcrypt.MinCost)
	return auth.NewAuthService(repo, issuer, hasher, defaultCfg), hasher
}

func storedCredentials(t *testing.T, hasher *authadapter.BcryptHasher, username, password string) *domain.AdminCredentials {
	t.Helper()
	hashed, err := hasher.Hash(authadapter.DigestPassword(password))
	require.NoError(t, err)
	return &domain.AdminCredentials{Username: username, PasswordHash: hashed}
}

func TestAuthService_Login(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockAdminRepository()
		service, hasher := newService(t, repo)
		repo.On("Get", ctx).Return(storedCredentials(t, hasher, "Admin", "hunter2"), nil)

		// Act
		token, ttl, err := service.Login(ctx, "  admin ", authadapter.DigestPassword("hunter2"))

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 12*time.Hour, ttl)

		claims, err := service.VerifyToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockAdminRepository()
		service, hasher := newService(t, repo)
		repo.On("Get", ctx).Return(storedCredentials(t, hasher, "admin", "hunter2"), nil)

		// Act
		_, _, err := service.Login(ctx, "admin", authadapter.DigestPassword("hunter3"))

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockAdminRepository()
		service, hasher := newService(t, repo)
		repo.On("Get", ctx).Return(storedCredentials(t, hasher, "admin", "hunter2"), nil)

		// Act
		_, _, err := service.Login(ctx, "root", authadapter.DigestPassword("hunter2"))

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("not configured", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockAdminRepository()
		service, _ := newService(t, repo)
		repo.On("Get", ctx).Return(nil, domain.ErrAdminNotConfigured)

		// Act
		_, _, err := service.Login(ctx, "admin", "digest")

		// Assert
		assert.ErrorIs(t, err, domain.ErrAdminNotConfigured)
	})

	t.Run("missing fields", func(t *testing.T) {
		// Arrange
		repo := repository.NewMockAdminRepository()
		service, _ := newService(t, repo)

		// Act
		_, _, err := service.Login(context.Background(), "admin", "")

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "Get", mock.Anything)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	// Arrange
	service, _ := newService(t, repository.NewMockAdminRepository())

	// Act
	_, err := service.VerifyToken(context.Background(), "not.a.token")

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_SeedAdmin(t *testing.T) {

	t.Run("stores bcrypt of digest", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockAdminRepository()
		service, hasher := newService(t, repo)
		digest := authadapter.DigestPassword("hunter2")
		repo.On("Save", ctx, mock.MatchedBy(func(c domain.AdminCredentials) bool {
			return c.Username == "admin" && hasher.Compare(c.PasswordHash, digest) == nil
		})).Return(nil)

		// Act
		err := service.SeedAdmin(ctx, "seed-me", "admin", digest)

		// Assert
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("wrong guard", func(t *testing.T) {
		// Arrange
		repo := repository.NewMockAdminRepository()
		service, _ := newService(t, repo)

		// Act
		err := service.SeedAdmin(context.Background(), "guess", "admin", "digest")

		// Assert
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("disabled without secret", func(t *testing.T) {
		// Arrange
		repo := repository.NewMockAdminRepository()
		issuer, _ := authadapter.NewJWTIssuer("x", time.Hour)
		service := auth.NewAuthService(repo, issuer, authadapter.NewBcryptHasher(bcrypt.MinCost), config.AuthConfig{})

		// Act
		err := service.SeedAdmin(context.Background(), "", "admin", "digest")

		// Assert
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
