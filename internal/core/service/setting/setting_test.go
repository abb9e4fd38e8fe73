package setting_test

import (
	"context"
	"testing"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/setting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingService_GetAllSettings(t *testing.T) {

	t.Run("seeds wedding defaults when empty", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUow := repository.NewMockUnitOfWork()
		service := setting.NewSettingService(mockUow)
		mockUow.GetSettingRepoMock().On("List", ctx).Return(map[string]domain.SettingFields{}, nil)
		mockUow.GetSettingRepoMock().On("Merge", ctx, domain.WeddingSettingsCategory, domain.DefaultWeddingSettings()).Return(nil)
		mockUow.On("Execute", ctx, mock.Anything).Return(nil)

		// Act
		all, err := service.GetAllSettings(ctx)

		// Assert
		require.NoError(t, err)
		require.Contains(t, all, domain.WeddingSettingsCategory)
		assert.Equal(t, false, all[domain.WeddingSettingsCategory]["isLiveStreamActive"])
		mockUow.GetSettingRepoMock().AssertExpectations(t)
	})

	t.Run("returns stored categories", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUow := repository.NewMockUnitOfWork()
		service := setting.NewSettingService(mockUow)
		stored := map[string]domain.SettingFields{"wedding": {"coupleNames": "A & B"}}
		mockUow.GetSettingRepoMock().On("List", ctx).Return(stored, nil)

		// Act
		all, err := service.GetAllSettings(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, stored, all)
		mockUow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func TestSettingService_UpdateSettingField(t *testing.T) {

	t.Run("missing category", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUow := repository.NewMockUnitOfWork()
		service := setting.NewSettingService(mockUow)
		mockUow.GetSettingRepoMock().On("SetField", ctx, "stream", "title", "Live").Return(domain.ErrSettingNotFound)

		// Act
		err := service.UpdateSettingField(ctx, "stream", "title", "Live")

		// Assert
		assert.ErrorIs(t, err, domain.ErrSettingNotFound)
	})

	t.Run("empty field", func(t *testing.T) {
		// Arrange
		service := setting.NewSettingService(repository.NewMockUnitOfWork())

		// Act
		err := service.UpdateSettingField(context.Background(), "wedding", "", true)

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSettingService_UpdateSettings(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := setting.NewSettingService(mockUow)
	fields := domain.SettingFields{"isLiveStreamActive": true}
	mockUow.GetSettingRepoMock().On("Merge", ctx, "wedding", fields).Return(nil)

	// Act
	err := service.UpdateSettings(ctx, "wedding", fields)

	// Assert
	require.NoError(t, err)
	mockUow.GetSettingRepoMock().AssertExpectations(t)
}
