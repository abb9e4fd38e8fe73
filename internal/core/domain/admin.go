package domain

import "time"

// DefaultAdminUsername is used when stored credentials carry no username
const DefaultAdminUsername = "admin"

// AdminCredentials represents the single admin login.
// PasswordHash is a bcrypt digest of the client-side SHA-256 hex of the password.
type AdminCredentials struct {
	Username     string
	PasswordHash string
	UpdatedAt    time.Time
}

// TokenClaims represents a verified admin token payload
type TokenClaims struct {
	Subject   string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
