package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// Login checks the credentials and issues a signed admin token
func (s *authService) Login(ctx context.Context, username string, passwordHash string) (string, time.Duration, error) {
	if err := s.CheckCredentials(ctx, username, passwordHash); err != nil {
		return "", 0, err
	}

	token, ttl, err := s.tokens.Issue(strings.TrimSpace(username))
	if err != nil {
		return "", 0, fmt.Errorf("could not issue token: %w", err)
	}

	return token, ttl, nil
}

// CheckCredentials compares a username case-insensitively and the client-side password digest against the stored bcrypt hash
func (s *authService) CheckCredentials(ctx context.Context, username string, passwordHash string) error {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	credentials, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}

	storedUsername := credentials.Username
	if storedUsername == "" {
		storedUsername = domain.DefaultAdminUsername
	}

	if !strings.EqualFold(strings.TrimSpace(storedUsername), username) {
		return domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(credentials.PasswordHash, passwordHash); err != nil {
		return domain.ErrInvalidCredentials
	}

	return nil
}

func (s *authService) VerifyToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	return s.tokens.Verify(token)
}
