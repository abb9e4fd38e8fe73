package chi_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/ratelimit/redis"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRequireAdmin(t *testing.T) {

	t.Run("valid token passes", func(t *testing.T) {
		// Arrange
		service := auth.NewMockAuthService()
		service.On("VerifyToken", mock.Anything, "good").Return(&domain.TokenClaims{Username: "admin"}, nil)
		h := chi.RequireAdmin(service, discardLogger)(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("wrong scheme is rejected before verification", func(t *testing.T) {
		// Arrange
		service := auth.NewMockAuthService()
		h := chi.RequireAdmin(service, discardLogger)(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		service.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
	})

	t.Run("no auth service answers unavailable", func(t *testing.T) {
		// Arrange
		h := chi.RequireAdmin(nil, discardLogger)(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRateLimit(t *testing.T) {

	t.Run("allowed request carries remaining header", func(t *testing.T) {
		// Arrange
		limiter := redis.NewMockRateLimiter()
		limiter.On("Allow", mock.Anything, "192.0.2.1", redis.ActionLike).Return(true, nil)
		limiter.On("GetRemaining", mock.Anything, "192.0.2.1", redis.ActionLike).Return(int64(29), nil)
		h := chi.RateLimit(limiter, redis.ActionLike, discardLogger)(okHandler)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

		// Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "29", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		// Arrange
		limiter := redis.NewMockRateLimiter()
		limiter.On("Allow", mock.Anything, mock.Anything, redis.ActionUpload).Return(false, errors.New("redis down"))
		h := chi.RateLimit(limiter, redis.ActionUpload, discardLogger)(okHandler)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

		// Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
		limiter.AssertNotCalled(t, "GetRemaining", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil limiter is a passthrough", func(t *testing.T) {
		h := chi.RateLimit(nil, redis.ActionUpload, discardLogger)(okHandler)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestNewRouter_Health(t *testing.T) {
	// Arrange
	router := chi.NewRouter(discardLogger, chi.Handlers{}, chi.RouterConfig{Env: "prod"})
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var body chi.HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestNewRouter_Metrics(t *testing.T) {

	t.Run("served when configured", func(t *testing.T) {
		metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("wedding_media_uploads_total 1\n"))
		})
		router := chi.NewRouter(discardLogger, chi.Handlers{}, chi.RouterConfig{Metrics: metrics})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "wedding_media_uploads_total")
	})

	t.Run("absent otherwise", func(t *testing.T) {
		router := chi.NewRouter(discardLogger, chi.Handlers{}, chi.RouterConfig{})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
