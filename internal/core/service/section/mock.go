package section

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockSectionService is a mock implementation of SectionService
type MockSectionService struct {
	mock.Mock
}

// NewMockSectionService creates a new MockSectionService
func NewMockSectionService() *MockSectionService {
	return &MockSectionService{}
}

func (m *MockSectionService) ListSections(ctx context.Context) ([]domain.Section, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Section), args.Error(1)
}

func (m *MockSectionService) UpdateSection(ctx context.Context, id string, update domain.SectionUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockSectionService) BulkUpdateSections(ctx context.Context, patches []domain.SectionPatch) error {
	args := m.Called(ctx, patches)
	return args.Error(0)
}

func (m *MockSectionService) ResetSections(ctx context.Context) ([]domain.Section, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Section), args.Error(1)
}
