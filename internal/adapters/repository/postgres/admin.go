package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type sqlAdminRepository struct {
	db SQLQuerier
}

// NewSqlAdminRepository creates sqlAdminRepository that implements port.AdminRepository
func NewSqlAdminRepository(db SQLQuerier) port.AdminRepository {
	return &sqlAdminRepository{
		db: db,
	}
}

// Get returns the admin credentials
func (s *sqlAdminRepository) Get(ctx context.Context) (*domain.AdminCredentials, error) {
	var credentials domain.AdminCredentials
	err := s.db.QueryRowContext(ctx, `SELECT username, password_hash, updated_at FROM admin_credentials WHERE id = 1`).
		Scan(&credentials.Username, &credentials.PasswordHash, &credentials.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotConfigured
		}
		return nil, err
	}
	return &credentials, nil
}

// Save replaces the admin credentials
func (s *sqlAdminRepository) Save(ctx context.Context, credentials domain.AdminCredentials) error {
	query := `
		INSERT INTO admin_credentials (id, username, password_hash, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			password_hash = EXCLUDED.password_hash,
			updated_at = EXCLUDED.updated_at`

	updatedAt := credentials.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query, credentials.Username, credentials.PasswordHash, updatedAt)
	return err
}
