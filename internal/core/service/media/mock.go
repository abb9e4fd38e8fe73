package media

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMediaService is a mock implementation of MediaService
type MockMediaService struct {
	mock.Mock
}

// NewMockMediaService creates a new MockMediaService
func NewMockMediaService() *MockMediaService {
	return &MockMediaService{}
}

func (m *MockMediaService) HandleUpload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

func (m *MockMediaService) GetMedia(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func (m *MockMediaService) ListMedia(ctx context.Context, limit int, lastVisible *uuid.UUID) ([]domain.Media, *uuid.UUID, error) {
	args := m.Called(ctx, limit, lastVisible)
	var items []domain.Media
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Media)
	}
	var next *uuid.UUID
	if args.Get(1) != nil {
		next = args.Get(1).(*uuid.UUID)
	}
	return items, next, args.Error(2)
}

func (m *MockMediaService) UpdateMedia(ctx context.Context, id uuid.UUID, update domain.MediaUpdate) (*domain.Media, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func (m *MockMediaService) DeleteMedia(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMediaService) LikeMedia(ctx context.Context, id uuid.UUID, action domain.LikeAction) (int, error) {
	args := m.Called(ctx, id, action)
	return args.Int(0), args.Error(1)
}
