package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// SeedAdmin stores credentials when guard matches the configured seed secret.
// An unset secret disables seeding.
func (s *authService) SeedAdmin(ctx context.Context, guard string, username string, passwordHash string) error {
	if s.cfg.SeedSecret == "" || subtle.ConstantTimeCompare([]byte(guard), []byte(s.cfg.SeedSecret)) != 1 {
		return domain.ErrForbidden
	}
	return s.SetCredentials(ctx, username, passwordHash)
}

// SetCredentials replaces the admin credentials with a bcrypt hash of the password digest
func (s *authService) SetCredentials(ctx context.Context, username string, passwordHash string) error {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	hashed, err := s.hasher.Hash(passwordHash)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	return s.repo.Save(ctx, domain.AdminCredentials{
		Username:     username,
		PasswordHash: hashed,
		UpdatedAt:    time.Now().UTC(),
	})
}
