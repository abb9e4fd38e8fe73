package event

import (
	"context"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

// NewMockEventService creates a new MockEventService
func NewMockEventService() *MockEventService {
	return &MockEventService{}
}

func (m *MockEventService) LogEvent(ctx context.Context, event domain.EventLog) (*domain.EventLog, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventLog), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.EventLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventLog), args.Error(1)
}

func (m *MockEventService) GetStats(ctx context.Context, start *time.Time, end *time.Time) (*domain.EventStats, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventStats), args.Error(1)
}
