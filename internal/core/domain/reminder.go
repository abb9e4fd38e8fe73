package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReminderSchedule is the schedule used when none is supplied
const DefaultReminderSchedule = "T-1day,T-6hours"

// Reminder represents a reminder email registration
type Reminder struct {
	ID        uuid.UUID
	Email     string
	Schedule  string
	SentAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
