package reminder

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReminderService is a mock implementation of ReminderService
type MockReminderService struct {
	mock.Mock
}

// NewMockReminderService creates a new MockReminderService
func NewMockReminderService() *MockReminderService {
	return &MockReminderService{}
}

func (m *MockReminderService) RegisterReminder(ctx context.Context, email string, schedule string) (*domain.Reminder, error) {
	args := m.Called(ctx, email, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) ListReminders(ctx context.Context) ([]domain.Reminder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderService) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
