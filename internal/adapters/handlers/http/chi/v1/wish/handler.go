package wish

import (
	"log/slog"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for wish routes
type HandlerV1 struct {
	wishService port.WishService
	logger      *slog.Logger
}

// NewWishHandlerV1 creates HandlerV1
func NewWishHandlerV1(service port.WishService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		wishService: service,
		logger:      logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(mw common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.SubmitWishV1)
	router.Get("/", h.ListWishesV1)
	router.Get("/stats/overview", h.GetStatsV1)
	router.Get("/{wishID}", h.GetWishV1)
	router.With(mw.Admin).Put("/{wishID}", h.UpdateWishV1)
	router.With(mw.Admin).Delete("/{wishID}", h.DeleteWishV1)
	router.With(mw.LikeRate).Post("/{wishID}/like", h.LikeWishV1)

	return router
}

// V1Wish is the JSON shape of a wish
type V1Wish struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Relation      string    `json:"relation"`
	Email         string    `json:"email"`
	OriginalWish  string    `json:"originalWish"`
	EnhancedWish  string    `json:"enhancedWish"`
	Tone          string    `json:"tone"`
	ArtworkStyle  string    `json:"artworkStyle"`
	ArtworkPrompt string    `json:"artworkPrompt"`
	Language      string    `json:"language"`
	Likes         int       `json:"likes"`
	IsApproved    bool      `json:"isApproved"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toV1Wish(w domain.Wish) V1Wish {
	return V1Wish{
		ID:            w.ID,
		Name:          w.Name,
		Relation:      w.Relation,
		Email:         w.Email,
		OriginalWish:  w.OriginalWish,
		EnhancedWish:  w.EnhancedWish,
		Tone:          w.Tone,
		ArtworkStyle:  w.ArtworkStyle,
		ArtworkPrompt: w.ArtworkPrompt,
		Language:      w.Language,
		Likes:         w.Likes,
		IsApproved:    w.IsApproved,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
