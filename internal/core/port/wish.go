package port

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// WishRepository is an interface to define wish repository interactions
type WishRepository interface {
	Create(ctx context.Context, wish domain.Wish) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Wish, error)
	ListApproved(ctx context.Context, limit int, offset int) ([]domain.Wish, error)
	Update(ctx context.Context, id uuid.UUID, update domain.WishUpdate) error
	UpdateLikes(ctx context.Context, id uuid.UUID, likes int) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.WishStats, error)
}

// WishService is an interface to define wish service
type WishService interface {
	SubmitWish(ctx context.Context, wish domain.Wish) (*domain.Wish, error)
	GetWish(ctx context.Context, id uuid.UUID) (*domain.Wish, error)
	ListWishes(ctx context.Context, limit int, offset int) ([]domain.Wish, error)
	UpdateWish(ctx context.Context, id uuid.UUID, update domain.WishUpdate) (*domain.Wish, error)
	DeleteWish(ctx context.Context, id uuid.UUID) error
	LikeWish(ctx context.Context, id uuid.UUID, action domain.LikeAction) (int, error)
	GetStats(ctx context.Context) (*domain.WishStats, error)
}
