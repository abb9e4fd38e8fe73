package eventbroker

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockEventConsumer struct {
	mock.Mock
}

func NewMockEventConsumer() *MockEventConsumer {
	return &MockEventConsumer{}
}

func (m *MockEventConsumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	args := m.Called(ctx, handler)
	return args.Error(0)
}

func (m *MockEventConsumer) Close() error {
	args := m.Called()
	return args.Error(0)
}
