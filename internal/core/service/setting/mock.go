package setting

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockSettingService is a mock implementation of SettingService
type MockSettingService struct {
	mock.Mock
}

// NewMockSettingService creates a new MockSettingService
func NewMockSettingService() *MockSettingService {
	return &MockSettingService{}
}

func (m *MockSettingService) GetAllSettings(ctx context.Context) (map[string]domain.SettingFields, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SettingFields), args.Error(1)
}

func (m *MockSettingService) GetSettings(ctx context.Context, category string) (domain.SettingFields, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SettingFields), args.Error(1)
}

func (m *MockSettingService) UpdateSettings(ctx context.Context, category string, fields domain.SettingFields) error {
	args := m.Called(ctx, category, fields)
	return args.Error(0)
}

func (m *MockSettingService) UpdateSettingField(ctx context.Context, category string, field string, value any) error {
	args := m.Called(ctx, category, field, value)
	return args.Error(0)
}
