package media

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListMedia returns one page ordered by likes then upload date, and the cursor for the next page
func (s *mediaService) ListMedia(ctx context.Context, limit int, lastVisible *uuid.UUID) ([]domain.Media, *uuid.UUID, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, err := s.repo.List(ctx, limit, lastVisible)
	if err != nil {
		return nil, nil, err
	}

	if len(items) == 0 {
		return items, nil, nil
	}

	next := items[len(items)-1].ID
	return items, &next, nil
}
