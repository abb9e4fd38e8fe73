package port

import (
	"context"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// EventConsumer is an interface to define a broker consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// EventPublisher is an interface to define a broker publisher
type EventPublisher interface {
	Publish(ctx context.Context, data []byte) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}

// EventRepository is an interface to define event log repository interactions
type EventRepository interface {
	Create(ctx context.Context, event domain.EventLog) error
	List(ctx context.Context, filter domain.EventFilter) ([]domain.EventLog, error)
	FindBetween(ctx context.Context, start *time.Time, end *time.Time) ([]domain.EventLog, error)
}

// EventService is an interface to define event log service
type EventService interface {
	LogEvent(ctx context.Context, event domain.EventLog) (*domain.EventLog, error)
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.EventLog, error)
	GetStats(ctx context.Context, start *time.Time, end *time.Time) (*domain.EventStats, error)
}
