package event_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi"
	eventv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/event"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const adminToken = "admin-token"

func newRouter(service *event.MockEventService) http.Handler {
	authService := auth.NewMockAuthService()
	authService.On("VerifyToken", mock.Anything, adminToken).Return(&domain.TokenClaims{Username: "admin"}, nil)
	authService.On("VerifyToken", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidToken)

	handler := eventv1.NewEventHandlerV1(service, discardLogger)
	return chi.NewRouter(discardLogger, chi.Handlers{Event: handler}, chi.RouterConfig{AuthService: authService})
}

func TestLogEventV1(t *testing.T) {

	t.Run("success - forwards fields", func(t *testing.T) {
		// Arrange
		ts := time.Date(2025, 10, 11, 19, 0, 0, 0, time.UTC)
		service := event.NewMockEventService()
		service.On("LogEvent", mock.Anything, mock.MatchedBy(func(e domain.EventLog) bool {
			return e.EventType == "click" && e.Page == "/gallery" && e.Timestamp.Equal(ts) &&
				e.UserID != nil && *e.UserID == "u-1" && e.Metadata["button"] == "like"
		})).Return(&domain.EventLog{ID: uuid.New(), EventType: "click", Page: "/gallery", Metadata: map[string]any{"button": "like"}}, nil)
		router := newRouter(service)
		body := `{"eventType":"click","page":"/gallery","timestamp":"2025-10-11T19:00:00Z","userId":"u-1","metadata":{"button":"like"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("error - publish failure", func(t *testing.T) {
		// Arrange
		service := event.NewMockEventService()
		service.On("LogEvent", mock.Anything, mock.Anything).Return(nil, errors.Join(domain.ErrPublishFailed, errors.New("nats down")))
		router := newRouter(service)
		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListEventsV1(t *testing.T) {
	// Arrange
	service := event.NewMockEventService()
	service.On("ListEvents", mock.Anything, domain.EventFilter{
		EventType: "click",
		SessionID: "s-1",
		Limit:     10,
		Offset:    5,
	}).Return([]domain.EventLog{{ID: uuid.New()}}, nil)
	router := newRouter(service)
	req := httptest.NewRequest(http.MethodGet, "/api/events?eventType=click&sessionId=s-1&limit=10&offset=5", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestGetStatsV1(t *testing.T) {

	t.Run("success - parses date range", func(t *testing.T) {
		// Arrange
		start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		service := event.NewMockEventService()
		service.On("GetStats", mock.Anything, mock.MatchedBy(func(s *time.Time) bool {
			return s != nil && s.Equal(start)
		}), (*time.Time)(nil)).Return(&domain.EventStats{
			TotalEvents:    4,
			EventTypes:     map[string]int{"click": 4},
			Pages:          map[string]int{"/": 4},
			UniqueSessions: 2,
			UniqueUsers:    1,
		}, nil)
		router := newRouter(service)
		req := httptest.NewRequest(http.MethodGet, "/api/events/stats?startDate=2025-10-01", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data eventv1.V1EventStats `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 4, body.Data.TotalEvents)
		assert.Equal(t, 2, body.Data.UniqueSessions)
		service.AssertExpectations(t)
	})

	t.Run("error - invalid date", func(t *testing.T) {
		// Arrange
		service := event.NewMockEventService()
		router := newRouter(service)
		req := httptest.NewRequest(http.MethodGet, "/api/events/stats?endDate=yesterday", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything, mock.Anything)
	})
}
