package setting

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for settings routes
type HandlerV1 struct {
	settingService port.SettingService
	logger         *slog.Logger
}

// NewSettingHandlerV1 creates HandlerV1
func NewSettingHandlerV1(service port.SettingService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		settingService: service,
		logger:         logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(mw common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.GetAllSettingsV1)
	router.Get("/{category}", h.GetSettingsV1)
	router.With(mw.Admin).Put("/{category}", h.UpdateSettingsV1)
	router.With(mw.Admin).Patch("/{category}/{field}", h.UpdateSettingFieldV1)

	return router
}

// V1UpdateFieldRequest is the body request for update setting field
type V1UpdateFieldRequest struct {
	Value any `json:"value"`
}

// GetAllSettingsV1 returns every settings category
func (h *HandlerV1) GetAllSettingsV1(w http.ResponseWriter, r *http.Request) {
	all, err := h.settingService.GetAllSettings(r.Context())
	if err != nil {
		h.logger.Error("error getting settings", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch settings", err)
		return
	}

	common.OK(w, h.logger, http.StatusOK, "", all)
}

// GetSettingsV1 returns one settings category
func (h *HandlerV1) GetSettingsV1(w http.ResponseWriter, r *http.Request) {
	fields, err := h.settingService.GetSettings(r.Context(), chi.URLParam(r, "category"))
	switch {
	case errors.Is(err, domain.ErrSettingNotFound), errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusNotFound, "Settings category not found", nil)
	case err != nil:
		h.logger.Error("error getting settings category", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch settings", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "", fields)
	}
}

// UpdateSettingsV1 merges the body into a settings category
func (h *HandlerV1) UpdateSettingsV1(w http.ResponseWriter, r *http.Request) {
	var fields domain.SettingFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	err := h.settingService.UpdateSettings(r.Context(), chi.URLParam(r, "category"), fields)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Settings must be a non-empty object", nil)
	case err != nil:
		h.logger.Error("error updating settings", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to update settings", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Settings updated successfully", nil)
	}
}

// UpdateSettingFieldV1 sets one field of a settings category
func (h *HandlerV1) UpdateSettingFieldV1(w http.ResponseWriter, r *http.Request) {
	var req V1UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	err := h.settingService.UpdateSettingField(r.Context(), chi.URLParam(r, "category"), chi.URLParam(r, "field"), req.Value)
	switch {
	case errors.Is(err, domain.ErrSettingNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Settings category not found", nil)
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Category and field are required", nil)
	case err != nil:
		h.logger.Error("error updating setting field", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to update setting", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Setting updated successfully", nil)
	}
}
