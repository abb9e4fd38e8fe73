package media

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTranscodeRunner is a mock implementation of port.TranscodeRunner
type MockTranscodeRunner struct {
	mock.Mock
}

// NewMockTranscodeRunner creates a new MockTranscodeRunner
func NewMockTranscodeRunner() *MockTranscodeRunner {
	return &MockTranscodeRunner{}
}

func (m *MockTranscodeRunner) Transcode(ctx context.Context, inputPath string, outputPath string, options []string) error {
	args := m.Called(ctx, inputPath, outputPath, options)
	return args.Error(0)
}

// MockImageEncoder is a mock implementation of port.ImageEncoder
type MockImageEncoder struct {
	mock.Mock
}

// NewMockImageEncoder creates a new MockImageEncoder
func NewMockImageEncoder() *MockImageEncoder {
	return &MockImageEncoder{}
}

func (m *MockImageEncoder) EncodeJPEG(ctx context.Context, inputPath string, outputPath string, maxDimension int, quality int) error {
	args := m.Called(ctx, inputPath, outputPath, maxDimension, quality)
	return args.Error(0)
}
