package port

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// ReminderRepository is an interface to define reminder repository interactions
type ReminderRepository interface {
	Create(ctx context.Context, reminder domain.Reminder) error
	List(ctx context.Context) ([]domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReminderService is an interface to define reminder service
type ReminderService interface {
	RegisterReminder(ctx context.Context, email string, schedule string) (*domain.Reminder, error)
	ListReminders(ctx context.Context) ([]domain.Reminder, error)
	DeleteReminder(ctx context.Context, id uuid.UUID) error
}
