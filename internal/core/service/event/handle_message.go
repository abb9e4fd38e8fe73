package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

func (m *eventMessageService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.EventLog

	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal event: %w", err)
	}
	if event.ID == uuid.Nil {
		return fmt.Errorf("%w: event has no id", domain.ErrInvalidInput)
	}

	m.logger.Info("handling event", "id", event.ID, "event_type", event.EventType, "page", event.Page)

	return m.repo.Create(ctx, event)
}
