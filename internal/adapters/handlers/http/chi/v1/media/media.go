package media

import (
	"errors"
	"net/http"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// V1ListMediaResponse is the response to list media
type V1ListMediaResponse struct {
	Success     bool       `json:"success"`
	Data        []V1Media  `json:"data"`
	Count       int        `json:"count"`
	LastVisible *uuid.UUID `json:"lastVisible"`
}

// V1UpdateMediaRequest is the body request for update media
type V1UpdateMediaRequest struct {
	FileName    *string `json:"fileName"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsApproved  *bool   `json:"isApproved"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
}

// V1LikeRequest is the body request for like and unlike
type V1LikeRequest struct {
	Action string `json:"action" validate:"required,oneof=like unlike"`
}

// ListMediaV1 lists media by popularity with a keyset cursor
func (h *HandlerV1) ListMediaV1(w http.ResponseWriter, r *http.Request) {
	limit := common.IntQuery(r, "limit", 0)

	var lastVisible *uuid.UUID
	if raw := r.URL.Query().Get("lastVisible"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			lastVisible = &parsed
		}
	}

	items, next, err := h.mediaService.ListMedia(r.Context(), limit, lastVisible)
	if err != nil {
		h.logger.Error("error listing media", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch media", err)
		return
	}

	data := make([]V1Media, 0, len(items))
	for _, item := range items {
		data = append(data, toV1Media(item))
	}
	common.WriteJSON(w, h.logger, http.StatusOK, V1ListMediaResponse{
		Success:     true,
		Data:        data,
		Count:       len(data),
		LastVisible: next,
	})
}

// GetMediaV1 returns one media record
func (h *HandlerV1) GetMediaV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "mediaID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Media not found", nil)
		return
	}

	media, err := h.mediaService.GetMedia(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrMediaNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Media not found", nil)
	case err != nil:
		h.logger.Error("error getting media", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch media", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "", toV1Media(*media))
	}
}

// UpdateMediaV1 applies an admin edit
func (h *HandlerV1) UpdateMediaV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "mediaID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Media not found", nil)
		return
	}

	var req V1UpdateMediaRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, common.ValidationMessage(err), nil)
		return
	}

	update := domain.MediaUpdate{
		FileName:    req.FileName,
		Description: req.Description,
		IsApproved:  req.IsApproved,
		Category:    req.Category,
	}
	media, err := h.mediaService.UpdateMedia(r.Context(), id, update)
	switch {
	case errors.Is(err, domain.ErrMediaNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Media not found", nil)
	case err != nil:
		h.logger.Error("error updating media", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to update media", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Media updated successfully", toV1Media(*media))
	}
}

// DeleteMediaV1 removes the blob best-effort then the record
func (h *HandlerV1) DeleteMediaV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "mediaID")
	if !ok {
		common.OK(w, h.logger, http.StatusOK, "Media already deleted (not found)", nil)
		return
	}

	deleted, err := h.mediaService.DeleteMedia(r.Context(), id)
	switch {
	case err != nil:
		h.logger.Error("error deleting media", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to delete media", err)
	case !deleted:
		common.OK(w, h.logger, http.StatusOK, "Media already deleted (not found)", nil)
	default:
		common.OK(w, h.logger, http.StatusOK, "Media deleted successfully", nil)
	}
}

// LikeMediaV1 likes or unlikes a media record
func (h *HandlerV1) LikeMediaV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "mediaID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Media not found", nil)
		return
	}

	var req V1LikeRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Action must be like or unlike", nil)
		return
	}

	likes, err := h.mediaService.LikeMedia(r.Context(), id, domain.LikeAction(req.Action))
	switch {
	case errors.Is(err, domain.ErrMediaNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Media not found", nil)
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Action must be like or unlike", nil)
	case err != nil:
		h.logger.Error("error liking media", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to like/unlike media", err)
	default:
		message := "Media liked successfully"
		if req.Action == string(domain.LikeActionUnlike) {
			message = "Media unliked successfully"
		}
		common.OK(w, h.logger, http.StatusOK, message, map[string]int{"likes": likes})
	}
}
