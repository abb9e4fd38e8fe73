package auth

import (
	"context"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, username string, passwordHash string) (string, time.Duration, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockAuthService) VerifyToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenClaims), args.Error(1)
}

func (m *MockAuthService) SeedAdmin(ctx context.Context, guard string, username string, passwordHash string) error {
	args := m.Called(ctx, guard, username, passwordHash)
	return args.Error(0)
}

func (m *MockAuthService) SetCredentials(ctx context.Context, username string, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}

func (m *MockAuthService) CheckCredentials(ctx context.Context, username string, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}
