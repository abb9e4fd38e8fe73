package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository/postgres"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(eventType string, page string, occurredAt time.Time) domain.EventLog {
	return domain.EventLog{
		ID:        uuid.New(),
		EventType: eventType,
		EventName: "click",
		Timestamp: occurredAt,
		SessionID: "session-1",
		Page:      page,
		Metadata:  map[string]any{"button": "rsvp"},
		CreatedAt: occurredAt,
	}
}

func TestSqlEventRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := postgres.NewSqlEventRepository(dbConnection)
	base := time.Date(2025, 10, 11, 10, 0, 0, 0, time.UTC)

	t.Run("Create is idempotent on redelivery", func(t *testing.T) {
		truncate()
		event := newEvent("page_view", "home", base)

		require.NoError(t, repo.Create(ctx, event))
		require.NoError(t, repo.Create(ctx, event))

		events, err := repo.List(ctx, domain.EventFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "rsvp", events[0].Metadata["button"])
		assert.Nil(t, events[0].UserID)
	})

	t.Run("List applies filters", func(t *testing.T) {
		truncate()
		userID := "user-7"
		withUser := newEvent("user_interaction", "gallery", base)
		withUser.UserID = &userID
		for _, e := range []domain.EventLog{withUser, newEvent("page_view", "gallery", base), newEvent("page_view", "home", base)} {
			require.NoError(t, repo.Create(ctx, e))
		}

		byPage, err := repo.List(ctx, domain.EventFilter{Page: "gallery", Limit: 10})
		require.NoError(t, err)
		assert.Len(t, byPage, 2)

		byTypeAndPage, err := repo.List(ctx, domain.EventFilter{EventType: "page_view", Page: "gallery", Limit: 10})
		require.NoError(t, err)
		assert.Len(t, byTypeAndPage, 1)

		byUser, err := repo.List(ctx, domain.EventFilter{UserID: userID, Limit: 10})
		require.NoError(t, err)
		require.Len(t, byUser, 1)
		require.NotNil(t, byUser[0].UserID)
		assert.Equal(t, userID, *byUser[0].UserID)
	})

	t.Run("FindBetween bounds on occurrence time", func(t *testing.T) {
		truncate()
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, newEvent("page_view", "home", base.Add(time.Duration(i)*time.Hour))))
		}
		start := base.Add(30 * time.Minute)

		bounded, err := repo.FindBetween(ctx, &start, nil)
		require.NoError(t, err)
		assert.Len(t, bounded, 2)

		all, err := repo.FindBetween(ctx, nil, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
