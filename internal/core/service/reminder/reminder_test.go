package reminder_test

import (
	"context"
	"testing"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/reminder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReminderService_RegisterReminder(t *testing.T) {

	t.Run("default schedule", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockReminderRepository()
		service := reminder.NewReminderService(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(r domain.Reminder) bool {
			return r.Email == "guest@example.com" && r.Schedule == domain.DefaultReminderSchedule && r.SentAt == nil
		})).Return(nil)

		// Act
		result, err := service.RegisterReminder(ctx, " guest@example.com ", "")

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ID)
		repo.AssertExpectations(t)
	})

	t.Run("custom schedule", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockReminderRepository()
		service := reminder.NewReminderService(repo)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		// Act
		result, err := service.RegisterReminder(ctx, "guest@example.com", "T-2days")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "T-2days", result.Schedule)
	})

	t.Run("email required", func(t *testing.T) {
		// Arrange
		repo := repository.NewMockReminderRepository()
		service := reminder.NewReminderService(repo)

		// Act
		_, err := service.RegisterReminder(context.Background(), "", "")

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReminderService_DeleteReminder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := repository.NewMockReminderRepository()
	service := reminder.NewReminderService(repo)
	id := uuid.New()
	repo.On("Delete", ctx, id).Return(domain.ErrReminderNotFound)

	// Act
	err := service.DeleteReminder(ctx, id)

	// Assert
	assert.ErrorIs(t, err, domain.ErrReminderNotFound)
}
