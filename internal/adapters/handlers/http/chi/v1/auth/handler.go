package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// SeedHeader carries the seed secret on POST /seed
const SeedHeader = "X-Admin-Seed"

// HandlerV1 is the handler for admin auth routes
type HandlerV1 struct {
	authService port.AuthService
	logger      *slog.Logger
}

// NewAuthHandlerV1 creates HandlerV1
func NewAuthHandlerV1(service port.AuthService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		authService: service,
		logger:      logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(_ common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.Post("/login", h.LoginV1)
	router.Get("/verify", h.VerifyV1)
	router.Post("/seed", h.SeedV1)

	return router
}

// V1CredentialsRequest is the body request for login and seed.
// PasswordHash is the SHA-256 hex digest computed by the client.
type V1CredentialsRequest struct {
	Username     string `json:"username" validate:"required"`
	PasswordHash string `json:"passwordHash" validate:"required"`
}

// V1LoginResponse is the response to login
type V1LoginResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token"`
	ExpiresInMs int64  `json:"expiresInMs"`
}

// V1VerifyResponse is the response to verify
type V1VerifyResponse struct {
	Success bool           `json:"success"`
	Payload V1TokenPayload `json:"payload"`
}

// V1TokenPayload is the verified token content
type V1TokenPayload struct {
	Subject   string    `json:"sub"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// LoginV1 exchanges admin credentials for a token
func (h *HandlerV1) LoginV1(w http.ResponseWriter, r *http.Request) {
	var req V1CredentialsRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	token, ttl, err := h.authService.Login(r.Context(), req.Username, req.PasswordHash)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Username and password are required", nil)
	case errors.Is(err, domain.ErrAdminNotConfigured):
		common.Fail(w, h.logger, http.StatusNotFound, "Admin credentials not set", nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.logger.Warn("admin login rejected", "username", req.Username)
		common.Fail(w, h.logger, http.StatusUnauthorized, "Invalid credentials", nil)
	case err != nil:
		h.logger.Error("error during login", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Login failed", err)
	default:
		common.WriteJSON(w, h.logger, http.StatusOK, V1LoginResponse{
			Success:     true,
			Token:       token,
			ExpiresInMs: ttl.Milliseconds(),
		})
	}
}

// VerifyV1 checks the bearer token and returns its claims
func (h *HandlerV1) VerifyV1(w http.ResponseWriter, r *http.Request) {
	token, ok := common.BearerToken(r)
	if !ok {
		common.Fail(w, h.logger, http.StatusUnauthorized, "Invalid token", nil)
		return
	}

	claims, err := h.authService.VerifyToken(r.Context(), token)
	if err != nil {
		common.Fail(w, h.logger, http.StatusUnauthorized, "Invalid token", nil)
		return
	}

	common.WriteJSON(w, h.logger, http.StatusOK, V1VerifyResponse{
		Success: true,
		Payload: V1TokenPayload{
			Subject:   claims.Subject,
			Username:  claims.Username,
			IssuedAt:  claims.IssuedAt,
			ExpiresAt: claims.ExpiresAt,
		},
	})
}

// SeedV1 stores admin credentials when the seed secret header matches
func (h *HandlerV1) SeedV1(w http.ResponseWriter, r *http.Request) {
	var req V1CredentialsRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	err := h.authService.SeedAdmin(r.Context(), r.Header.Get(SeedHeader), req.Username, req.PasswordHash)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		common.Fail(w, h.logger, http.StatusForbidden, "Forbidden", nil)
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Username and password are required", nil)
	case err != nil:
		h.logger.Error("error seeding admin", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to seed admin credentials", err)
	default:
		h.logger.Info("admin credentials seeded", "username", req.Username)
		common.OK(w, h.logger, http.StatusOK, "Admin credentials saved", nil)
	}
}
