package wish

import (
	"errors"
	"net/http"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// V1SubmitWishRequest is the body request for submit wish
type V1SubmitWishRequest struct {
	Name          string `json:"name"`
	Relation      string `json:"relation"`
	Email         string `json:"email" validate:"omitempty,email"`
	Wish          string `json:"wish"`
	Tone          string `json:"tone"`
	ArtworkStyle  string `json:"artworkStyle"`
	ArtworkPrompt string `json:"artworkPrompt"`
	Language      string `json:"language"`
}

// V1UpdateWishRequest is the body request for update wish
type V1UpdateWishRequest struct {
	Name          *string `json:"name"`
	Relation      *string `json:"relation"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Wish          *string `json:"wish"`
	Tone          *string `json:"tone"`
	ArtworkStyle  *string `json:"artworkStyle"`
	ArtworkPrompt *string `json:"artworkPrompt"`
	Language      *string `json:"language"`
	IsApproved    *bool   `json:"isApproved"`
}

// V1LikeRequest is the body request for like and unlike
type V1LikeRequest struct {
	Action string `json:"action" validate:"required,oneof=like unlike"`
}

// V1WishStats is the wishes overview
type V1WishStats struct {
	TotalWishes    int            `json:"totalWishes"`
	ApprovedWishes int            `json:"approvedWishes"`
	TotalLikes     int            `json:"totalLikes"`
	ToneStats      map[string]int `json:"toneStats"`
	LanguageStats  map[string]int `json:"languageStats"`
}

// SubmitWishV1 stores a new wish
func (h *HandlerV1) SubmitWishV1(w http.ResponseWriter, r *http.Request) {
	var req V1SubmitWishRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, common.ValidationMessage(err), nil)
		return
	}

	wish, err := h.wishService.SubmitWish(r.Context(), domain.Wish{
		Name:          req.Name,
		Relation:      req.Relation,
		Email:         req.Email,
		OriginalWish:  req.Wish,
		Tone:          req.Tone,
		ArtworkStyle:  req.ArtworkStyle,
		ArtworkPrompt: req.ArtworkPrompt,
		Language:      req.Language,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Name and wish are required", nil)
	case err != nil:
		h.logger.Error("error submitting wish", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to submit wish", err)
	default:
		common.OK(w, h.logger, http.StatusCreated, "Wish submitted successfully", toV1Wish(*wish))
	}
}

// ListWishesV1 lists approved wishes, newest first
func (h *HandlerV1) ListWishesV1(w http.ResponseWriter, r *http.Request) {
	wishes, err := h.wishService.ListWishes(r.Context(), common.IntQuery(r, "limit", 0), common.IntQuery(r, "offset", 0))
	if err != nil {
		h.logger.Error("error listing wishes", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch wishes", err)
		return
	}

	data := make([]V1Wish, 0, len(wishes))
	for _, wish := range wishes {
		data = append(data, toV1Wish(wish))
	}
	common.List(w, h.logger, data)
}

// GetWishV1 returns one wish
func (h *HandlerV1) GetWishV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "wishID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
		return
	}

	wish, err := h.wishService.GetWish(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrWishNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
	case err != nil:
		h.logger.Error("error getting wish", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch wish", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "", toV1Wish(*wish))
	}
}

// UpdateWishV1 applies an admin edit
func (h *HandlerV1) UpdateWishV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "wishID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
		return
	}

	var req V1UpdateWishRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, common.ValidationMessage(err), nil)
		return
	}

	wish, err := h.wishService.UpdateWish(r.Context(), id, domain.WishUpdate{
		Name:          req.Name,
		Relation:      req.Relation,
		Email:         req.Email,
		OriginalWish:  req.Wish,
		Tone:          req.Tone,
		ArtworkStyle:  req.ArtworkStyle,
		ArtworkPrompt: req.ArtworkPrompt,
		Language:      req.Language,
		IsApproved:    req.IsApproved,
	})
	switch {
	case errors.Is(err, domain.ErrWishNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
	case err != nil:
		h.logger.Error("error updating wish", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to update wish", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Wish updated successfully", toV1Wish(*wish))
	}
}

// DeleteWishV1 removes a wish
func (h *HandlerV1) DeleteWishV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "wishID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
		return
	}

	err := h.wishService.DeleteWish(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrWishNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
	case err != nil:
		h.logger.Error("error deleting wish", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to delete wish", err)
	default:
		common.OK(w, h.logger, http.StatusOK, "Wish deleted successfully", nil)
	}
}

// LikeWishV1 likes or unlikes a wish
func (h *HandlerV1) LikeWishV1(w http.ResponseWriter, r *http.Request) {
	id, ok := common.UUIDParam(r, "wishID")
	if !ok {
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
		return
	}

	var req V1LikeRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.Fail(w, h.logger, http.StatusBadRequest, "Action must be like or unlike", nil)
		return
	}

	likes, err := h.wishService.LikeWish(r.Context(), id, domain.LikeAction(req.Action))
	switch {
	case errors.Is(err, domain.ErrWishNotFound):
		common.Fail(w, h.logger, http.StatusNotFound, "Wish not found", nil)
	case errors.Is(err, domain.ErrInvalidInput):
		common.Fail(w, h.logger, http.StatusBadRequest, "Action must be like or unlike", nil)
	case err != nil:
		h.logger.Error("error liking wish", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to like/unlike wish", err)
	default:
		message := "Wish liked successfully"
		if req.Action == string(domain.LikeActionUnlike) {
			message = "Wish unliked successfully"
		}
		common.OK(w, h.logger, http.StatusOK, message, map[string]int{"likes": likes})
	}
}

// GetStatsV1 returns the wishes overview
func (h *HandlerV1) GetStatsV1(w http.ResponseWriter, r *http.Request) {
	stats, err := h.wishService.GetStats(r.Context())
	if err != nil {
		h.logger.Error("error getting wish stats", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Failed to fetch statistics", err)
		return
	}

	common.OK(w, h.logger, http.StatusOK, "", V1WishStats{
		TotalWishes:    stats.TotalWishes,
		ApprovedWishes: stats.ApprovedWishes,
		TotalLikes:     stats.TotalLikes,
		ToneStats:      stats.ToneStats,
		LanguageStats:  stats.LanguageStats,
	})
}
