package media

import (
	"context"
	"errors"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// DeleteMedia removes the blob best-effort, then the record.
// It reports false when the record was already gone.
func (s *mediaService) DeleteMedia(ctx context.Context, id uuid.UUID) (bool, error) {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			return false, nil
		}
		return false, err
	}

	if s.store != nil && media.StorageFileName != "" {
		if err := s.store.Delete(ctx, media.StorageKey()); err != nil {
			s.logger.Warn("failed to delete media object", "key", media.StorageKey(), "error", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
