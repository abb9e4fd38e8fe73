package storage

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockObjectStore struct {
	mock.Mock
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{}
}

func (m *MockObjectStore) Put(ctx context.Context, localPath string, key string, opts domain.ObjectOptions) (*domain.StoredObject, error) {
	args := m.Called(ctx, localPath, key, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredObject), args.Error(1)
}

func (m *MockObjectStore) DurableURL(ctx context.Context, object domain.StoredObject) (string, error) {
	args := m.Called(ctx, object)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
