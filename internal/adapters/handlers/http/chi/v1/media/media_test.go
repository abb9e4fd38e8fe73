package media_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi"
	mediav1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/media"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const adminToken = "admin-token"

func newAdminRouter(service *media.MockMediaService) http.Handler {
	authService := auth.NewMockAuthService()
	authService.On("VerifyToken", mock.Anything, adminToken).Return(&domain.TokenClaims{Username: "admin"}, nil)
	authService.On("VerifyToken", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidToken)

	handler := mediav1.NewMediaHandlerV1(service, config.UploadConfig{MaxFileSize: 1 << 20}, discardLogger)
	return chi.NewRouter(discardLogger, chi.Handlers{Media: handler}, chi.RouterConfig{AuthService: authService})
}

func TestListMediaV1(t *testing.T) {

	t.Run("success - returns page and cursor", func(t *testing.T) {
		// Arrange
		cursor := uuid.New()
		last := uuid.New()
		service := media.NewMockMediaService()
		service.On("ListMedia", mock.Anything, 10, &cursor).
			Return([]domain.Media{{ID: uuid.New(), Likes: 3}, {ID: last, Likes: 1}}, &last, nil)
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodGet, "/api/media?limit=10&lastVisible="+cursor.String(), nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w.Body)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, float64(2), envelope["count"])
		assert.Equal(t, last.String(), envelope["lastVisible"])
		assert.Len(t, envelope["data"], 2)
		service.AssertExpectations(t)
	})

	t.Run("success - empty page has null cursor", func(t *testing.T) {
		// Arrange
		service := media.NewMockMediaService()
		service.On("ListMedia", mock.Anything, 0, (*uuid.UUID)(nil)).Return([]domain.Media{}, nil, nil)
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodGet, "/api/media?lastVisible=not-a-uuid", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w.Body)
		assert.Nil(t, envelope["lastVisible"])
		assert.Equal(t, float64(0), envelope["count"])
	})
}

func TestGetMediaV1(t *testing.T) {

	t.Run("error - not found", func(t *testing.T) {
		// Arrange
		id := uuid.New()
		service := media.NewMockMediaService()
		service.On("GetMedia", mock.Anything, id).Return(nil, domain.ErrMediaNotFound)
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodGet, "/api/media/"+id.String(), nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Media not found", decodeEnvelope(t, w.Body)["message"])
	})
}

func TestUpdateMediaV1(t *testing.T) {

	t.Run("error - requires admin token", func(t *testing.T) {
		// Arrange
		service := media.NewMockMediaService()
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodPut, "/api/media/"+uuid.NewString(), strings.NewReader(`{"description":"x"}`))
		req.Header.Set("Authorization", "Bearer wrong")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", decodeEnvelope(t, w.Body)["message"])
		service.AssertNotCalled(t, "UpdateMedia", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success - forwards optional fields", func(t *testing.T) {
		// Arrange
		id := uuid.New()
		service := media.NewMockMediaService()
		service.On("UpdateMedia", mock.Anything, id, mock.MatchedBy(func(u domain.MediaUpdate) bool {
			return u.Description != nil && *u.Description == "first dance" &&
				u.IsApproved != nil && !*u.IsApproved &&
				u.FileName == nil && u.Category == nil
		})).Return(&domain.Media{ID: id, Description: "first dance"}, nil)
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodPut, "/api/media/"+id.String(), strings.NewReader(`{"description":"first dance","isApproved":false}`))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})
}

func TestDeleteMediaV1(t *testing.T) {

	t.Run("success - already deleted is not an error", func(t *testing.T) {
		// Arrange
		id := uuid.New()
		service := media.NewMockMediaService()
		service.On("DeleteMedia", mock.Anything, id).Return(false, nil)
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodDelete, "/api/media/"+id.String(), nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Media already deleted (not found)", decodeEnvelope(t, w.Body)["message"])
	})

	t.Run("error - missing token", func(t *testing.T) {
		// Arrange
		service := media.NewMockMediaService()
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodDelete, "/api/media/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		service.AssertNotCalled(t, "DeleteMedia", mock.Anything, mock.Anything)
	})
}

func TestLikeMediaV1(t *testing.T) {

	t.Run("success - unlike", func(t *testing.T) {
		// Arrange
		id := uuid.New()
		service := media.NewMockMediaService()
		service.On("LikeMedia", mock.Anything, id, domain.LikeActionUnlike).Return(0, nil)
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodPost, "/api/media/"+id.String()+"/like", strings.NewReader(`{"action":"unlike"}`))
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w.Body)
		assert.Equal(t, "Media unliked successfully", envelope["message"])
		assert.Equal(t, map[string]any{"likes": float64(0)}, envelope["data"])
	})

	t.Run("error - invalid action", func(t *testing.T) {
		// Arrange
		service := media.NewMockMediaService()
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodPost, "/api/media/"+uuid.NewString()+"/like", strings.NewReader(`{"action":"love"}`))
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "LikeMedia", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - not found", func(t *testing.T) {
		// Arrange
		id := uuid.New()
		service := media.NewMockMediaService()
		service.On("LikeMedia", mock.Anything, id, domain.LikeActionLike).Return(0, domain.ErrMediaNotFound)
		router := newAdminRouter(service)
		req := httptest.NewRequest(http.MethodPost, "/api/media/"+id.String()+"/like", strings.NewReader(`{"action":"like"}`))
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
