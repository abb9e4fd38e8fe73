package wish

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// GetStats aggregates wishes and adds the media likes to the like total
func (s *wishService) GetStats(ctx context.Context) (*domain.WishStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	mediaLikes, err := s.mediaRepo.SumLikes(ctx)
	if err != nil {
		return nil, err
	}

	stats.TotalLikes += mediaLikes
	return stats, nil
}
