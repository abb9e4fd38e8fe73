package guest

import (
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type guestService struct {
	repo port.GuestRepository
	now  func() time.Time
}

// NewGuestService creates a new guest service
func NewGuestService(repo port.GuestRepository) port.GuestService {
	return &guestService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}
