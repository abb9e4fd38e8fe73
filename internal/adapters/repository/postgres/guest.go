package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type sqlGuestRepository struct {
	db SQLQuerier
}

// NewSqlGuestRepository creates sqlGuestRepository that implements port.GuestRepository
func NewSqlGuestRepository(db SQLQuerier) port.GuestRepository {
	return &sqlGuestRepository{
		db: db,
	}
}

// FindByDeviceID finds a guest by device id
func (s *sqlGuestRepository) FindByDeviceID(ctx context.Context, deviceID string) (*domain.Guest, error) {
	query := `
		SELECT device_id, name, phone_number, upload_count, created_at, last_active, updated_at
		FROM guests
		WHERE device_id = $1`

	var guestDB dbGuest
	err := s.db.QueryRowContext(ctx, query, deviceID).Scan(
		&guestDB.DeviceID,
		&guestDB.Name,
		&guestDB.PhoneNumber,
		&guestDB.UploadCount,
		&guestDB.CreatedAt,
		&guestDB.LastActive,
		&guestDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}

	return guestDB.ToDomain(), nil
}

// Save inserts the guest or overwrites the existing row
func (s *sqlGuestRepository) Save(ctx context.Context, guest domain.Guest) error {
	query := `
		INSERT INTO guests (device_id, name, phone_number, upload_count, created_at, last_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (device_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone_number = EXCLUDED.phone_number,
			upload_count = EXCLUDED.upload_count,
			last_active = EXCLUDED.last_active,
			updated_at = EXCLUDED.updated_at`

	var updatedAt sql.NullTime
	if guest.UpdatedAt != nil {
		updatedAt = sql.NullTime{Time: *guest.UpdatedAt, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		guest.DeviceID,
		guest.Name,
		guest.PhoneNumber,
		guest.UploadCount,
		guest.CreatedAt,
		guest.LastActive,
		updatedAt,
	)
	return err
}

// dbGuest represents a guest row in DB
type dbGuest struct {
	DeviceID    string       `db:"device_id"`
	Name        string       `db:"name"`
	PhoneNumber string       `db:"phone_number"`
	UploadCount int          `db:"upload_count"`
	CreatedAt   time.Time    `db:"created_at"`
	LastActive  time.Time    `db:"last_active"`
	UpdatedAt   sql.NullTime `db:"updated_at"`
}

// ToDomain converts to domain.Guest
func (g *dbGuest) ToDomain() *domain.Guest {
	guest := &domain.Guest{
		DeviceID:    g.DeviceID,
		Name:        g.Name,
		PhoneNumber: g.PhoneNumber,
		UploadCount: g.UploadCount,
		CreatedAt:   g.CreatedAt,
		LastActive:  g.LastActive,
	}
	if g.UpdatedAt.Valid {
		updatedAt := g.UpdatedAt.Time
		guest.UpdatedAt = &updatedAt
	}
	return guest
}
