package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer  = "wedding-invitation-backend"
	tokenSubject = "admin"
)

type adminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 admin tokens
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ port.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer creates a token issuer with the shared secret and token lifetime
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (j *JWTIssuer) Issue(username string) (string, time.Duration, error) {
	now := j.now()
	claims := adminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", 0, err
	}

	return signed, j.ttl, nil
}

func (j *JWTIssuer) Verify(token string) (*domain.TokenClaims, error) {
	var claims adminClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	result := &domain.TokenClaims{
		Subject:  claims.Subject,
		Username: claims.Username,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
