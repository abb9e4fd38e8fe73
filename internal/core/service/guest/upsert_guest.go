package guest

import (
	"context"
	"errors"
	"strings"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// UpsertGuest creates or merges a profile without touching its upload count
func (s *guestService) UpsertGuest(ctx context.Context, deviceID string, name string, phoneNumber string) (*domain.Guest, error) {
	return s.upsert(ctx, deviceID, strings.TrimSpace(name), strings.TrimSpace(phoneNumber), 0)
}

// RecordUpload creates or merges a profile and counts one more upload.
// The read and the write are not atomic, concurrent uploads from one device may lose an increment.
func (s *guestService) RecordUpload(ctx context.Context, deviceID string, name string, phoneNumber string) (*domain.Guest, error) {
	return s.upsert(ctx, deviceID, name, phoneNumber, 1)
}

func (s *guestService) upsert(ctx context.Context, deviceID string, name string, phoneNumber string, uploads int) (*domain.Guest, error) {
	if deviceID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()
	guest, err := s.repo.FindByDeviceID(ctx, deviceID)
	switch {
	case errors.Is(err, domain.ErrGuestNotFound):
		guest = &domain.Guest{
			DeviceID:  deviceID,
			CreatedAt: now,
		}
	case err != nil:
		return nil, err
	default:
		guest.UpdatedAt = &now
	}

	guest.MergeProfile(name, phoneNumber)
	guest.LastActive = now
	guest.UploadCount += uploads

	if err := s.repo.Save(ctx, *guest); err != nil {
		return nil, err
	}

	return guest, nil
}
