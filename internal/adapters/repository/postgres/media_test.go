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

func newMedia(likes int, uploadedAt time.Time) domain.Media {
	id := uuid.New()
	return domain.Media{
		ID:              id,
		FileName:        "photo.jpg",
		StorageFileName: id.String() + ".jpg",
		StorageURL:      "https://cdn.example.com/gallery-uploads/dev-1/" + id.String() + ".jpg",
		StorageFolder:   "gallery-uploads/dev-1",
		MimeType:        "image/jpeg",
		Size:            2048,
		Category:        "ceremony",
		IsApproved:      true,
		Likes:           likes,
		Compressed:      true,
		DeviceID:        "dev-1",
		UploadDate:      uploadedAt.UTC().Truncate(time.Microsecond),
	}
}

func TestSqlMediaRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := postgres.NewSqlMediaRepository(dbConnection)
	base := time.Date(2025, 10, 11, 19, 0, 0, 0, time.UTC)

	t.Run("Create and FindByID", func(t *testing.T) {
		truncate()
		media := newMedia(0, base)

		err := repo.Create(ctx, media)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, media.ID)
		require.NoError(t, err)
		assert.Equal(t, media.StorageURL, found.StorageURL)
		assert.Equal(t, media.StorageKey(), found.StorageKey())
		assert.Equal(t, "dev-1", found.DeviceID)
		assert.Empty(t, found.UploaderName)
		assert.Nil(t, found.UpdatedAt)
		assert.True(t, found.UploadDate.Equal(media.UploadDate))
	})

	t.Run("Create duplicate", func(t *testing.T) {
		truncate()
		media := newMedia(0, base)
		require.NoError(t, repo.Create(ctx, media))

		err := repo.Create(ctx, media)
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		truncate()

		_, err := repo.FindByID(ctx, uuid.New())
		require.ErrorIs(t, err, domain.ErrMediaNotFound)
	})

	t.Run("List orders by likes then upload date and pages after cursor", func(t *testing.T) {
		truncate()
		popular := newMedia(5, base)
		newer := newMedia(1, base.Add(time.Hour))
		older := newMedia(1, base)
		unliked := newMedia(0, base.Add(2*time.Hour))
		for _, m := range []domain.Media{older, unliked, popular, newer} {
			require.NoError(t, repo.Create(ctx, m))
		}

		firstPage, err := repo.List(ctx, 2, nil)
		require.NoError(t, err)
		require.Len(t, firstPage, 2)
		assert.Equal(t, popular.ID, firstPage[0].ID)
		assert.Equal(t, newer.ID, firstPage[1].ID)

		cursor := firstPage[1].ID
		secondPage, err := repo.List(ctx, 2, &cursor)
		require.NoError(t, err)
		require.Len(t, secondPage, 2)
		assert.Equal(t, older.ID, secondPage[0].ID)
		assert.Equal(t, unliked.ID, secondPage[1].ID)

		unknown := uuid.New()
		fromTop, err := repo.List(ctx, 10, &unknown)
		require.NoError(t, err)
		assert.Len(t, fromTop, 4)
	})

	t.Run("Update and UpdateLikes", func(t *testing.T) {
		truncate()
		media := newMedia(0, base)
		require.NoError(t, repo.Create(ctx, media))
		description := "first dance"
		approved := false

		err := repo.Update(ctx, media.ID, domain.MediaUpdate{Description: &description, IsApproved: &approved})
		require.NoError(t, err)
		require.NoError(t, repo.UpdateLikes(ctx, media.ID, 3))

		found, err := repo.FindByID(ctx, media.ID)
		require.NoError(t, err)
		assert.Equal(t, description, found.Description)
		assert.False(t, found.IsApproved)
		assert.Equal(t, "photo.jpg", found.FileName)
		assert.Equal(t, 3, found.Likes)
		assert.NotNil(t, found.UpdatedAt)

		total, err := repo.SumLikes(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("Update unknown media", func(t *testing.T) {
		truncate()

		err := repo.UpdateLikes(ctx, uuid.New(), 1)
		require.ErrorIs(t, err, domain.ErrMediaNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		truncate()
		media := newMedia(0, base)
		require.NoError(t, repo.Create(ctx, media))

		require.NoError(t, repo.Delete(ctx, media.ID))

		_, err := repo.FindByID(ctx, media.ID)
		require.ErrorIs(t, err, domain.ErrMediaNotFound)
		require.ErrorIs(t, repo.Delete(ctx, media.ID), domain.ErrMediaNotFound)
	})
}
