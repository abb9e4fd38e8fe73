package guest

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockGuestService is a mock implementation of GuestService
type MockGuestService struct {
	mock.Mock
}

// NewMockGuestService creates a new MockGuestService
func NewMockGuestService() *MockGuestService {
	return &MockGuestService{}
}

func (m *MockGuestService) GetGuest(ctx context.Context, deviceID string) (*domain.Guest, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestService) UpsertGuest(ctx context.Context, deviceID string, name string, phoneNumber string) (*domain.Guest, error) {
	args := m.Called(ctx, deviceID, name, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestService) RecordUpload(ctx context.Context, deviceID string, name string, phoneNumber string) (*domain.Guest, error) {
	args := m.Called(ctx, deviceID, name, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
