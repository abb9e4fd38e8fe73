package wish

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

func (s *wishService) UpdateWish(ctx context.Context, id uuid.UUID, update domain.WishUpdate) (*domain.Wish, error) {
	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *wishService) DeleteWish(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *wishService) LikeWish(ctx context.Context, id uuid.UUID, action domain.LikeAction) (int, error) {
	if action != domain.LikeActionLike && action != domain.LikeActionUnlike {
		return 0, domain.ErrInvalidInput
	}

	wish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	likes := domain.ApplyLike(wish.Likes, action)
	if err := s.repo.UpdateLikes(ctx, id, likes); err != nil {
		return 0, err
	}

	return likes, nil
}
