package media

import (
	"context"
	"strings"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

func (s *mediaService) UpdateMedia(ctx context.Context, id uuid.UUID, update domain.MediaUpdate) (*domain.Media, error) {
	if update.FileName != nil && strings.TrimSpace(*update.FileName) == "" {
		update.FileName = nil
	}
	if update.Category != nil {
		normalized := domain.NormalizeCategory(*update.Category)
		update.Category = &normalized
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}
