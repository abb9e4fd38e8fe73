package auth

import (
	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type authService struct {
	repo   port.AdminRepository
	tokens port.TokenIssuer
	hasher port.PasswordHasher
	cfg    config.AuthConfig
}

// NewAuthService creates a new admin authentication service
func NewAuthService(repo port.AdminRepository, tokens port.TokenIssuer, hasher port.PasswordHasher, cfg config.AuthConfig) port.AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		cfg:    cfg,
	}
}
