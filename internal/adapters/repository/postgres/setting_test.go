package postgres_test

import (
	"context"
	"testing"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository/postgres"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlSettingRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := postgres.NewSqlSettingRepository(dbConnection)

	t.Run("Merge keeps unrelated keys", func(t *testing.T) {
		truncate()
		require.NoError(t, repo.Merge(ctx, "wedding", domain.SettingFields{"weddingTime": "7 PM IST", "isLiveStreamActive": false}))

		require.NoError(t, repo.Merge(ctx, "wedding", domain.SettingFields{"isLiveStreamActive": true}))

		fields, err := repo.Get(ctx, "wedding")
		require.NoError(t, err)
		assert.Equal(t, "7 PM IST", fields["weddingTime"])
		assert.Equal(t, true, fields["isLiveStreamActive"])
	})

	t.Run("SetField", func(t *testing.T) {
		truncate()
		require.NoError(t, repo.Merge(ctx, "wedding", domain.SettingFields{"streamTitle": "old"}))

		require.NoError(t, repo.SetField(ctx, "wedding", "streamTitle", "Wedding Ceremony Live"))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Wedding Ceremony Live", all["wedding"]["streamTitle"])
	})

	t.Run("missing category", func(t *testing.T) {
		truncate()

		_, err := repo.Get(ctx, "theme")
		require.ErrorIs(t, err, domain.ErrSettingNotFound)
		require.ErrorIs(t, repo.SetField(ctx, "theme", "color", "gold"), domain.ErrSettingNotFound)
	})
}

func TestSqlAdminRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := postgres.NewSqlAdminRepository(dbConnection)

	t.Run("not configured", func(t *testing.T) {
		truncate()

		_, err := repo.Get(ctx)
		require.ErrorIs(t, err, domain.ErrAdminNotConfigured)
	})

	t.Run("Save replaces the single row", func(t *testing.T) {
		truncate()
		require.NoError(t, repo.Save(ctx, domain.AdminCredentials{Username: "admin", PasswordHash: "first"}))
		require.NoError(t, repo.Save(ctx, domain.AdminCredentials{Username: "couple", PasswordHash: "second"}))

		credentials, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "couple", credentials.Username)
		assert.Equal(t, "second", credentials.PasswordHash)
		assert.False(t, credentials.UpdatedAt.IsZero())
	})
}
