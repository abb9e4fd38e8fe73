package reminder

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for reminder routes
type HandlerV1 struct {
	reminderService port.ReminderService
	logger          *slog.Logger
}

// NewReminderHandlerV1 creates HandlerV1
func NewReminderHandlerV1(service port.ReminderService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		reminderService: service,
		logger:          logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(mw common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.RegisterReminderV1)
	router.With(mw.Admin).Get("/", h.ListRemindersV1)
	router.With(mw.Admin).Delete("/{reminderID}", h.DeleteReminderV1)

	return router
}

// V1RegisterReminderRequest is the body request for register reminder
type V1RegisterReminderRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Schedule string `json:"schedule"`
}

// V1Reminder is the JSON shape of a reminder
type V1Reminder struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Schedule  string     `json:"schedule"`
	SentAt    *time.Time `json:"sentAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toV1Reminder(r domain.Reminder) V1Reminder {
	return V1Reminder{
		ID:        r.ID,
		Email:     r.Email,
		Schedule:  r.Schedule,
		SentAt:    r.SentAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// RegisterReminderV1 registers an email for wedding reminders
func (h *HandlerV1) RegisterReminderV1(w http.ResponseWriter, r *http.Request) {
	var req V1RegisterReminderRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, reminderValidationMessage(err), nil)
		return
	}

	reminder, err := h.reminderService.RegisterReminder(r.Context(), req.Email, req.Schedule)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Email is required", nil)
	case err != nil:
		h.logger.Error("error registering reminder", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to register reminder", err)
	default:
		common.OK(w, h.logger, http.StatusCreated, "Reminder registered successfully", toV1Reminder(*reminder))
	}
}

// ListRemindersV1 lists reminders, newest first
func (h *HandlerV1) ListRemindersV1(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderService.ListReminders(r.Context())
	if err != nil {
		h.logger.Error("error listing reminders", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch reminders", err)
		return
	}

	data := make([]V1Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		data = append(data, toV1Reminder(reminder))
	}
	common.List(w, h.logger, data)
}

// DeleteReminderV1 removes a reminder
func (h *HandlerV1) DeleteReminderV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "reminderID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Reminder not found", nil)
		return
	}

	err := h.reminderService.DeleteReminder(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrReminderNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Reminder not found", nil)
	case err != nil:
		h.logger.Error("error deleting reminder", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to delete reminder", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Reminder deleted successfully", nil)
	}
}

func reminderValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 && ve[0].Tag() == "required" {
		return "Email is required"
	}
	if errors.As(err, &ve) {
		return "Invalid email address"
	}
	return common.ValidationMessage(err)
}
