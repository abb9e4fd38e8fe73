package section

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for section routes
type HandlerV1 struct {
	sectionService port.SectionService
	logger         *slog.Logger
}

// NewSectionHandlerV1 creates HandlerV1
func NewSectionHandlerV1(service port.SectionService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		sectionService: service,
		logger:         logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(mw common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListSectionsV1)
	router.With(mw.Admin).Put("/", h.BulkUpdateSectionsV1)
	router.With(mw.Admin).Post("/reset", h.ResetSectionsV1)
	router.With(mw.Admin).Put("/{sectionID}", h.UpdateSectionV1)

	return router
}

// V1Section is the JSON shape of a section
type V1Section struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Visible   bool       `json:"visible"`
	Order     int        `json:"order"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// V1UpdateSectionRequest is the body request for update section
type V1UpdateSectionRequest struct {
	Visible *bool   `json:"visible"`
	Order   *int    `json:"order" validate:"omitempty,min=0"`
	Name    *string `json:"name" validate:"omitempty,max=200"`
}

// V1SectionPatch is one entry of a bulk update
type V1SectionPatch struct {
	ID string `json:"id" validate:"required"`
	V1UpdateSectionRequest
}

// V1BulkUpdateSectionsRequest is the body request for bulk update sections
type V1BulkUpdateSectionsRequest struct {
	Sections json.RawMessage `json:"sections"`
}

func toV1Sections(sections []domain.Section) []V1Section {
	data := make([]V1Section, 0, len(sections))
	for _, s := range sections {
		data = append(data, V1Section{
			ID:        s.ID,
			Name:      s.Name,
			Visible:   s.Visible,
			Order:     s.Order,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return data
}

func (req V1UpdateSectionRequest) toDomain() domain.SectionUpdate {
	return domain.SectionUpdate{
		Visible: req.Visible,
		Order:   req.Order,
		Name:    req.Name,
	}
}

// ListSectionsV1 lists sections in display order
func (h *HandlerV1) ListSectionsV1(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sectionService.ListSections(r.Context())
	if err != nil {
		h.logger.Error("error listing sections", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch sections", err)
		return
	}

	common.List(w, h.logger, toV1Sections(sections))
}

// UpdateSectionV1 applies a partial update to one section
func (h *HandlerV1) UpdateSectionV1(w http.ResponseWriter, r *http.Request) {
	var req V1UpdateSectionRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, common.ValidationMessage(err), nil)
		return
	}

	err := h.sectionService.UpdateSection(r.Context(), chi.URLParam(r, "sectionID"), req.toDomain())
	switch {
	case errors.Is(err, domain.ErrSectionNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Section not found", nil)
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Section id is required", nil)
	case err != nil:
		h.logger.Error("error updating section", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to update section", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Section updated successfully", nil)
	}
}

// BulkUpdateSectionsV1 updates several sections in one transaction
func (h *HandlerV1) BulkUpdateSectionsV1(w http.ResponseWriter, r *http.Request) {
	var req V1BulkUpdateSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	raw := bytes.TrimSpace(req.Sections)
	if len(raw) == 0 || raw[0] != '[' {
		common.Fail(w, h.logger, http.StatusBadRequest, "Sections must be an array", nil)
		return
	}

	var items []V1SectionPatch
	if err := json.Unmarshal(raw, &items); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	patches := make([]domain.SectionPatch, 0, len(items))
	for _, item := range items {
		if err := common.Validate(item); err != nil {
			common.Fail(w, h.logger, http.StatusBadRequest, common.ValidationMessage(err), nil)
			return
		}
		patches = append(patches, domain.SectionPatch{ID: item.ID, Update: item.toDomain()})
	}

	err := h.sectionService.BulkUpdateSections(r.Context(), patches)
	switch {
	case errors.Is(err, domain.ErrSectionNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Section not found", err)
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Section id is required", nil)
	case err != nil:
		h.logger.Error("error updating sections", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to update sections", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Sections updated successfully", nil)
	}
}

// ResetSectionsV1 restores the default sections
func (h *HandlerV1) ResetSectionsV1(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sectionService.ResetSections(r.Context())
	if err != nil {
		h.logger.Error("error resetting sections", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to reset sections", err)
		return
	}

	common.OK(w, h.logger, http.StatusOK, "Sections reset successfully", toV1Sections(sections))
}
