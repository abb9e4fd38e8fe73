package wish

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

func (s *wishService) GetWish(ctx context.Context, id uuid.UUID) (*domain.Wish, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *wishService) ListWishes(ctx context.Context, limit int, offset int) ([]domain.Wish, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListApproved(ctx, limit, offset)
}
