package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher stores password digests as bcrypt hashes
type BcryptHasher struct {
	cost int
}

var _ port.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher, a cost of zero means bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (b *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b *BcryptHasher) Compare(hash string, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}

// DigestPassword returns the SHA-256 hex digest the admin panel sends instead of the raw password
func DigestPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
