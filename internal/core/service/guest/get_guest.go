package guest

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

func (s *guestService) GetGuest(ctx context.Context, deviceID string) (*domain.Guest, error) {
	if deviceID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.FindByDeviceID(ctx, deviceID)
}
