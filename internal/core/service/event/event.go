package event

import (
	"log/slog"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

type eventService struct {
	repo      port.EventRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewEventService creates a new event log service.
// With a nil publisher events are written to the repository synchronously.
func NewEventService(repo port.EventRepository, publisher port.EventPublisher, logger *slog.Logger) port.EventService {
	return &eventService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

type eventMessageService struct {
	repo   port.EventRepository
	logger *slog.Logger
}

// NewEventMessageService creates the broker handler persisting published events
func NewEventMessageService(repo port.EventRepository, logger *slog.Logger) port.MessageService {
	return &eventMessageService{
		repo:   repo,
		logger: logger,
	}
}
