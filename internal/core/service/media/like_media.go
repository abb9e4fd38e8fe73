package media

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

func (s *mediaService) LikeMedia(ctx context.Context, id uuid.UUID, action domain.LikeAction) (int, error) {
	if action != domain.LikeActionLike && action != domain.LikeActionUnlike {
		return 0, domain.ErrInvalidInput
	}

	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	likes := domain.ApplyLike(media.Likes, action)
	if err := s.repo.UpdateLikes(ctx, id, likes); err != nil {
		return 0, err
	}

	return likes, nil
}
