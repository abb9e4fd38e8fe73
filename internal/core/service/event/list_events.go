package event

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.EventLog, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}
