package port

import (
	"context"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// AdminRepository is an interface to define admin credential storage
type AdminRepository interface {
	Get(ctx context.Context) (*domain.AdminCredentials, error)
	Save(ctx context.Context, credentials domain.AdminCredentials) error
}

// TokenIssuer signs and verifies admin tokens
type TokenIssuer interface {
	Issue(username string) (string, time.Duration, error)
	Verify(token string) (*domain.TokenClaims, error)
}

// PasswordHasher hashes and compares password digests
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Compare(hash string, secret string) error
}

// AuthService is an interface to define admin authentication
type AuthService interface {
	Login(ctx context.Context, username string, passwordHash string) (string, time.Duration, error)
	VerifyToken(ctx context.Context, token string) (*domain.TokenClaims, error)
	SeedAdmin(ctx context.Context, guard string, username string, passwordHash string) error
	SetCredentials(ctx context.Context, username string, passwordHash string) error
	CheckCredentials(ctx context.Context, username string, passwordHash string) error
}

// RateLimiter is an interface to define request admission per key and action
type RateLimiter interface {
	Allow(ctx context.Context, key string, action string) (bool, error)
	GetRemaining(ctx context.Context, key string, action string) (int64, error)
}
