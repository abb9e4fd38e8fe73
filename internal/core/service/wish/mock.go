package wish

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWishService is a mock implementation of WishService
type MockWishService struct {
	mock.Mock
}

// NewMockWishService creates a new MockWishService
func NewMockWishService() *MockWishService {
	return &MockWishService{}
}

func (m *MockWishService) SubmitWish(ctx context.Context, wish domain.Wish) (*domain.Wish, error) {
	args := m.Called(ctx, wish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *MockWishService) GetWish(ctx context.Context, id uuid.UUID) (*domain.Wish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *MockWishService) ListWishes(ctx context.Context, limit int, offset int) ([]domain.Wish, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wish), args.Error(1)
}

func (m *MockWishService) UpdateWish(ctx context.Context, id uuid.UUID, update domain.WishUpdate) (*domain.Wish, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *MockWishService) DeleteWish(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWishService) LikeWish(ctx context.Context, id uuid.UUID, action domain.LikeAction) (int, error) {
	args := m.Called(ctx, id, action)
	return args.Int(0), args.Error(1)
}

func (m *MockWishService) GetStats(ctx context.Context) (*domain.WishStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WishStats), args.Error(1)
}
