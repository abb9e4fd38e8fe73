package media

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

func (s *mediaService) GetMedia(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	return s.repo.FindByID(ctx, id)
}
