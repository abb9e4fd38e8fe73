package compressor

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockMediaCompressor is a mock implementation of MediaCompressor
type MockMediaCompressor struct {
	mock.Mock
}

// NewMockMediaCompressor creates a new MockMediaCompressor
func NewMockMediaCompressor() *MockMediaCompressor {
	return &MockMediaCompressor{}
}

func (m *MockMediaCompressor) Compress(ctx context.Context, sourcePath string, mimeType string, originalExt string) (*domain.CompressionResult, error) {
	args := m.Called(ctx, sourcePath, mimeType, originalExt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompressionResult), args.Error(1)
}
