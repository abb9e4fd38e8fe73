package port

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// GuestRepository is an interface to define guest profile interactions
type GuestRepository interface {
	FindByDeviceID(ctx context.Context, deviceID string) (*domain.Guest, error)
	Save(ctx context.Context, guest domain.Guest) error
}

// GuestService is an interface to define guest service
type GuestService interface {
	GetGuest(ctx context.Context, deviceID string) (*domain.Guest, error)
	UpsertGuest(ctx context.Context, deviceID string, name string, phoneNumber string) (*domain.Guest, error)
	RecordUpload(ctx context.Context, deviceID string, name string, phoneNumber string) (*domain.Guest, error)
}
