package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// LogEvent fills in defaults and hands the event to the broker
func (s *eventService) LogEvent(ctx context.Context, event domain.EventLog) (*domain.EventLog, error) {
	now := time.Now().UTC()
	event.ID = uuid.New()
	event.CreatedAt = now
	if event.EventType == "" {
		event.EventType = domain.DefaultEventType
	}
	if event.EventName == "" {
		event.EventName = domain.DefaultEventName
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = now
	}
	if event.SessionID == "" {
		event.SessionID = uuid.NewString()
	}
	if event.Page == "" {
		event.Page = domain.DefaultEventPage
	}
	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	if s.publisher == nil {
		if err := s.repo.Create(ctx, event); err != nil {
			return nil, err
		}
		return &event, nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPublishFailed, err)
	}

	if err := s.publisher.Publish(ctx, data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPublishFailed, err)
	}

	return &event, nil
}
