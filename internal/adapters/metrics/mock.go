package metrics

import (
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockPipelineMetrics is a mock implementation of port.PipelineMetrics
type MockPipelineMetrics struct {
	mock.Mock
}

// NewMockPipelineMetrics creates a MockPipelineMetrics that accepts any observation
func NewMockPipelineMetrics() *MockPipelineMetrics {
	m := &MockPipelineMetrics{}
	m.On("ObserveStrategy", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("ObserveCompression", mock.Anything, mock.Anything).Maybe()
	m.On("ObserveUpload", mock.Anything).Maybe()
	return m
}

func (m *MockPipelineMetrics) ObserveStrategy(strategy string, success bool, duration time.Duration) {
	m.Called(strategy, success, duration)
}

func (m *MockPipelineMetrics) ObserveCompression(kind domain.MediaKind, compressed bool) {
	m.Called(kind, compressed)
}

func (m *MockPipelineMetrics) ObserveUpload(outcome string) {
	m.Called(outcome)
}
