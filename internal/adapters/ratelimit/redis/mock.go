package redis

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRateLimiter is a mock implementation of port.RateLimiter
type MockRateLimiter struct {
	mock.Mock
}

func NewMockRateLimiter() *MockRateLimiter {
	return &MockRateLimiter{}
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string, action string) (bool, error) {
	args := m.Called(ctx, key, action)
	return args.Bool(0), args.Error(1)
}

func (m *MockRateLimiter) GetRemaining(ctx context.Context, key string, action string) (int64, error) {
	args := m.Called(ctx, key, action)
	return args.Get(0).(int64), args.Error(1)
}
