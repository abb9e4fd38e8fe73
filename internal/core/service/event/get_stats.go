package event

import (
	"context"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// GetStats counts events by type and page, and distinct sessions and users, within the optional range
func (s *eventService) GetStats(ctx context.Context, start *time.Time, end *time.Time) (*domain.EventStats, error) {
	events, err := s.repo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	stats := &domain.EventStats{
		TotalEvents: len(events),
		EventTypes:  make(map[string]int),
		Pages:       make(map[string]int),
	}
	sessions := make(map[string]struct{})
	users := make(map[string]struct{})

	for _, e := range events {
		stats.EventTypes[e.EventType]++
		stats.Pages[e.Page]++
		if e.SessionID != "" {
			sessions[e.SessionID] = struct{}{}
		}
		if e.UserID != nil && *e.UserID != "" {
			users[*e.UserID] = struct{}{}
		}
	}

	stats.UniqueSessions = len(sessions)
	stats.UniqueUsers = len(users)
	return stats, nil
}
