package event

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dateOnly = "2006-01-02"

// HandlerV1 is the handler for event log routes
type HandlerV1 struct {
	eventService port.EventService
	logger       *slog.Logger
}

// NewEventHandlerV1 creates HandlerV1
func NewEventHandlerV1(service port.EventService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		eventService: service,
		logger:       logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(mw common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.LogEventV1)
	router.With(mw.Admin).Get("/", h.ListEventsV1)
	router.With(mw.Admin).Get("/stats", h.GetStatsV1)

	return router
}

// V1LogEventRequest is the body request for log event
type V1LogEventRequest struct {
	EventType string         `json:"eventType" validate:"max=100"`
	EventName string         `json:"eventName" validate:"max=200"`
	Timestamp *time.Time     `json:"timestamp"`
	UserID    *string        `json:"userId"`
	SessionID string         `json:"sessionId" validate:"max=200"`
	Page      string         `json:"page" validate:"max=500"`
	Metadata  map[string]any `json:"metadata"`
}

// V1Event is the JSON shape of a logged event
type V1Event struct {
	ID        uuid.UUID      `json:"id"`
	EventType string         `json:"eventType"`
	EventName string         `json:"eventName"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    *string        `json:"userId"`
	SessionID string         `json:"sessionId"`
	Page      string         `json:"page"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

// V1EventStats is the aggregated event counts
type V1EventStats struct {
	TotalEvents    int            `json:"totalEvents"`
	EventTypes     map[string]int `json:"eventTypes"`
	Pages          map[string]int `json:"pages"`
	UniqueSessions int            `json:"uniqueSessions"`
	UniqueUsers    int            `json:"uniqueUsers"`
}

func toV1Event(e domain.EventLog) V1Event {
	return V1Event{
		ID:        e.ID,
		EventType: e.EventType,
		EventName: e.EventName,
		Timestamp: e.Timestamp,
		UserID:    e.UserID,
		SessionID: e.SessionID,
		Page:      e.Page,
		Metadata:  e.Metadata,
		CreatedAt: e.CreatedAt,
	}
}

// LogEventV1 records a front-end event
func (h *HandlerV1) LogEventV1(w http.ResponseWriter, r *http.Request) {
	var req V1LogEventRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, common.ValidationMessage(err), nil)
		return
	}

	event := domain.EventLog{
		EventType: req.EventType,
		EventName: req.EventName,
		UserID:    req.UserID,
		SessionID: req.SessionID,
		Page:      req.Page,
		Metadata:  req.Metadata,
	}
	if req.Timestamp != nil {
		event.Timestamp = *req.Timestamp
	}

	logged, err := h.eventService.LogEvent(r.Context(), event)
	if err != nil {
		h.logger.Error("error logging event", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to log event", err)
		return
	}

	common.OK(w, h.logger, http.StatusCreated, "Event logged successfully", toV1Event(*logged))
}

// ListEventsV1 lists events matching the query filters, newest first
func (h *HandlerV1) ListEventsV1(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	events, err := h.eventService.ListEvents(r.Context(), domain.EventFilter{
		EventType: query.Get("eventType"),
		Page:      query.Get("page"),
		UserID:    query.Get("userId"),
		SessionID: query.Get("sessionId"),
		Limit:     common.IntQuery(r, "limit", 0),
		Offset:    common.IntQuery(r, "offset", 0),
	})
	if err != nil {
		h.logger.Error("error listing events", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch events", err)
		return
	}

	data := make([]V1Event, 0, len(events))
	for _, event := range events {
		data = append(data, toV1Event(event))
	}
	common.List(w, h.logger, data)
}

// GetStatsV1 aggregates events between the optional startDate and endDate
func (h *HandlerV1) GetStatsV1(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Invalid startDate", nil)
		return
	}
	end, err := parseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Invalid endDate", nil)
		return
	}

	stats, err := h.eventService.GetStats(r.Context(), start, end)
	if err != nil {
		h.logger.Error("error getting event stats", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch statistics", err)
		return
	}

	common.OK(w, h.logger, http.StatusOK, "", V1EventStats{
		TotalEvents:    stats.TotalEvents,
		EventTypes:     stats.EventTypes,
		Pages:          stats.Pages,
		UniqueSessions: stats.UniqueSessions,
		UniqueUsers:    stats.UniqueUsers,
	})
}

// parseDate accepts RFC 3339 timestamps or plain dates, empty means unbounded
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &t, nil
}
