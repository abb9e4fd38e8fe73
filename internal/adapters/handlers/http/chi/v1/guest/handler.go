package guest

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

// HandlerV1 is the handler for guest routes
type HandlerV1 struct {
	guestService port.GuestService
	logger       *slog.Logger
}

// NewGuestHandlerV1 creates HandlerV1
func NewGuestHandlerV1(service port.GuestService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		guestService: service,
		logger:       logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(_ common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.Get("/{deviceID}", h.GetGuestV1)
	router.Put("/{deviceID}", h.UpsertGuestV1)

	return router
}

// V1Guest is the JSON shape of a guest profile
type V1Guest struct {
	DeviceID    string     `json:"deviceId"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	UploadCount int        `json:"uploadCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastActive  time.Time  `json:"lastActive"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// V1UpsertGuestRequest is the body request for upsert guest
type V1UpsertGuestRequest struct {
	Name        string `json:"name" validate:"max=200"`
	PhoneNumber string `json:"phoneNumber" validate:"max=50"`
}

func toV1Guest(g domain.Guest) V1Guest {
	return V1Guest{
		DeviceID:    g.DeviceID,
		Name:        g.Name,
		PhoneNumber: g.PhoneNumber,
		UploadCount: g.UploadCount,
		CreatedAt:   g.CreatedAt,
		LastActive:  g.LastActive,
		UpdatedAt:   g.UpdatedAt,
	}
}

// GetGuestV1 returns the profile of a device
func (h *HandlerV1) GetGuestV1(w http.ResponseWriter, r *http.Request) {
	guest, err := h.guestService.GetGuest(r.Context(), chi.URLParam(r, "deviceID"))
	switch {
	case errors.Is(err, domain.ErrGuestNotFound), errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusNotFound, "Guest not found", nil)
	case err != nil:
		h.logger.Error("error getting guest", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch guest", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "", toV1Guest(*guest))
	}
}

// UpsertGuestV1 creates or merges the profile of a device
func (h *HandlerV1) UpsertGuestV1(w http.ResponseWriter, r *http.Request) {
	var req V1UpsertGuestRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, common.ValidationMessage(err), nil)
		return
	}

	guest, err := h.guestService.UpsertGuest(r.Context(), chi.URLParam(r, "deviceID"), req.Name, req.PhoneNumber)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Device id is required", nil)
	case err != nil:
		h.logger.Error("error saving guest", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to save guest", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Guest saved successfully", toV1Guest(*guest))
	}
}
