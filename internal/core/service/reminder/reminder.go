package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/google/uuid"
)

type reminderService struct {
	repo port.ReminderRepository
}

// NewReminderService creates a new reminder service
func NewReminderService(repo port.ReminderRepository) port.ReminderService {
	return &reminderService{repo: repo}
}

func (s *reminderService) RegisterReminder(ctx context.Context, email string, schedule string) (*domain.Reminder, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(schedule) == "" {
		schedule = domain.DefaultReminderSchedule
	}

	now := time.Now().UTC()
	reminder := domain.Reminder{
		ID:        uuid.New(),
		Email:     email,
		Schedule:  schedule,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	return &reminder, nil
}

func (s *reminderService) ListReminders(ctx context.Context) ([]domain.Reminder, error) {
	return s.repo.List(ctx)
}

func (s *reminderService) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
