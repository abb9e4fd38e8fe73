package repository

import (
	"context"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMediaRepository struct {
	mock.Mock
}

func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{}
}

func (m *MockMediaRepository) Create(ctx context.Context, media domain.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func (m *MockMediaRepository) List(ctx context.Context, limit int, lastVisible *uuid.UUID) ([]domain.Media, error) {
	args := m.Called(ctx, limit, lastVisible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Media), args.Error(1)
}

func (m *MockMediaRepository) Update(ctx context.Context, id uuid.UUID, update domain.MediaUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockMediaRepository) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) error {
	args := m.Called(ctx, id, likes)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaRepository) SumLikes(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockGuestRepository struct {
	mock.Mock
}

func NewMockGuestRepository() *MockGuestRepository {
	return &MockGuestRepository{}
}

func (m *MockGuestRepository) FindByDeviceID(ctx context.Context, deviceID string) (*domain.Guest, error) {
	args := m.Called(ctx, deviceID)
	if fn, ok := args.Get(0).(func(context.Context, string) (*domain.Guest, error)); ok {
		return fn(ctx, deviceID)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) Save(ctx context.Context, guest domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

type MockWishRepository struct {
	mock.Mock
}

func NewMockWishRepository() *MockWishRepository {
	return &MockWishRepository{}
}

func (m *MockWishRepository) Create(ctx context.Context, wish domain.Wish) error {
	args := m.Called(ctx, wish)
	return args.Error(0)
}

func (m *MockWishRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Wish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *MockWishRepository) ListApproved(ctx context.Context, limit int, offset int) ([]domain.Wish, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wish), args.Error(1)
}

func (m *MockWishRepository) Update(ctx context.Context, id uuid.UUID, update domain.WishUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockWishRepository) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) error {
	args := m.Called(ctx, id, likes)
	return args.Error(0)
}

func (m *MockWishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWishRepository) Stats(ctx context.Context) (*domain.WishStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WishStats), args.Error(1)
}

type MockReminderRepository struct {
	mock.Mock
}

func NewMockReminderRepository() *MockReminderRepository {
	return &MockReminderRepository{}
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) List(ctx context.Context) ([]domain.Reminder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Create(ctx context.Context, event domain.EventLog) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, filter domain.EventFilter) ([]domain.EventLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventLog), args.Error(1)
}

func (m *MockEventRepository) FindBetween(ctx context.Context, start *time.Time, end *time.Time) ([]domain.EventLog, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventLog), args.Error(1)
}

type MockSectionRepository struct {
	mock.Mock
}

func NewMockSectionRepository() *MockSectionRepository {
	return &MockSectionRepository{}
}

func (m *MockSectionRepository) List(ctx context.Context) ([]domain.Section, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Section), args.Error(1)
}

func (m *MockSectionRepository) Update(ctx context.Context, id string, update domain.SectionUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockSectionRepository) CreateMany(ctx context.Context, sections []domain.Section) error {
	args := m.Called(ctx, sections)
	return args.Error(0)
}

func (m *MockSectionRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSettingRepository struct {
	mock.Mock
}

func NewMockSettingRepository() *MockSettingRepository {
	return &MockSettingRepository{}
}

func (m *MockSettingRepository) List(ctx context.Context) (map[string]domain.SettingFields, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SettingFields), args.Error(1)
}

func (m *MockSettingRepository) Get(ctx context.Context, category string) (domain.SettingFields, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SettingFields), args.Error(1)
}

func (m *MockSettingRepository) Merge(ctx context.Context, category string, fields domain.SettingFields) error {
	args := m.Called(ctx, category, fields)
	return args.Error(0)
}

func (m *MockSettingRepository) SetField(ctx context.Context, category string, field string, value any) error {
	args := m.Called(ctx, category, field, value)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{}
}

func (m *MockAdminRepository) Get(ctx context.Context) (*domain.AdminCredentials, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminCredentials), args.Error(1)
}

func (m *MockAdminRepository) Save(ctx context.Context, credentials domain.AdminCredentials) error {
	args := m.Called(ctx, credentials)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
	sectionRepo *MockSectionRepository
	settingRepo *MockSettingRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		sectionRepo: &MockSectionRepository{},
		settingRepo: &MockSettingRepository{},
	}
}

func (m *MockUnitOfWork) SectionRepo() port.SectionRepository {
	return m.sectionRepo
}

func (m *MockUnitOfWork) SettingRepo() port.SettingRepository {
	return m.settingRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetSectionRepoMock() *MockSectionRepository {
	return m.sectionRepo
}

func (m *MockUnitOfWork) GetSettingRepoMock() *MockSettingRepository {
	return m.settingRepo
}
