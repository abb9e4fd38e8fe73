package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultEventType = "user_interaction"
	DefaultEventName = "unknown"
	DefaultEventPage = "unknown"
)

// EventLog represents a front-end analytics event.
// It travels over the broker as JSON before being persisted.
type EventLog struct {
	ID        uuid.UUID      `json:"id"`
	EventType string         `json:"eventType"`
	EventName string         `json:"eventName"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    *string        `json:"userId"`
	SessionID string         `json:"sessionId"`
	Page      string         `json:"page"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EventFilter represents the event listing filters, empty means any
type EventFilter struct {
	EventType string
	Page      string
	UserID    string
	SessionID string
	Limit     int
	Offset    int
}

// EventStats represents aggregated event counts over a time range
type EventStats struct {
	TotalEvents    int
	EventTypes     map[string]int
	Pages          map[string]int
	UniqueSessions int
	UniqueUsers    int
}
