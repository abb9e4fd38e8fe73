package setting_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi"
	settingv1 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/setting"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/setting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const adminToken = "admin-token"

func newRouter(service *setting.MockSettingService) http.Handler {
	authService := auth.NewMockAuthService()
	authService.On("VerifyToken", mock.Anything, adminToken).Return(&domain.TokenClaims{Username: "admin"}, nil)
	authService.On("VerifyToken", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidToken)

	handler := settingv1.NewSettingHandlerV1(service, discardLogger)
	return chi.NewRouter(discardLogger, chi.Handlers{Setting: handler}, chi.RouterConfig{AuthService: authService})
}

func TestGetAllSettingsV1(t *testing.T) {
	// Arrange
	service := setting.NewMockSettingService()
	service.On("GetAllSettings", mock.Anything).Return(map[string]domain.SettingFields{
		domain.WeddingSettingsCategory: domain.DefaultWeddingSettings(),
	}, nil)
	router := newRouter(service)
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data map[string]map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, false, body.Data["wedding"]["isLiveStreamActive"])
}

func TestGetSettingsV1(t *testing.T) {
	// Arrange
	service := setting.NewMockSettingService()
	service.On("GetSettings", mock.Anything, "missing").Return(nil, domain.ErrSettingNotFound)
	router := newRouter(service)
	req := httptest.NewRequest(http.MethodGet, "/api/settings/missing", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSettingsV1(t *testing.T) {
	// Arrange
	service := setting.NewMockSettingService()
	service.On("UpdateSettings", mock.Anything, "wedding", domain.SettingFields{
		"isLiveStreamActive": true,
		"streamTitle":        "Live now",
	}).Return(nil)
	router := newRouter(service)
	req := httptest.NewRequest(http.MethodPut, "/api/settings/wedding", strings.NewReader(`{"isLiveStreamActive":true,"streamTitle":"Live now"}`))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestUpdateSettingFieldV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		service := setting.NewMockSettingService()
		service.On("UpdateSettingField", mock.Anything, "wedding", "liveStreamUrl", "https://example.com/live").Return(nil)
		router := newRouter(service)
		req := httptest.NewRequest(http.MethodPatch, "/api/settings/wedding/liveStreamUrl", strings.NewReader(`{"value":"https://example.com/live"}`))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("error - category missing", func(t *testing.T) {
		// Arrange
		service := setting.NewMockSettingService()
		service.On("UpdateSettingField", mock.Anything, "ghost", "x", float64(1)).Return(domain.ErrSettingNotFound)
		router := newRouter(service)
		req := httptest.NewRequest(http.MethodPatch, "/api/settings/ghost/x", strings.NewReader(`{"value":1}`))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
