package wish_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/wish"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishService_SubmitWish(t *testing.T) {

	t.Run("applies defaults", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockWishRepository()
		service := wish.NewWishService(repo, repository.NewMockMediaRepository())
		repo.On("Create", ctx, mock.MatchedBy(func(w domain.Wish) bool {
			return w.ID != uuid.Nil && w.EnhancedWish == w.OriginalWish
		})).Return(nil)

		// Act
		result, err := service.SubmitWish(ctx, domain.Wish{Name: " Meera ", OriginalWish: "Congratulations!"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Meera", result.Name)
		assert.Equal(t, domain.DefaultWishTone, result.Tone)
		assert.Equal(t, domain.DefaultWishArtworkStyle, result.ArtworkStyle)
		assert.Equal(t, domain.DefaultWishLanguage, result.Language)
		assert.True(t, result.IsApproved)
		assert.Equal(t, 0, result.Likes)
		repo.AssertExpectations(t)
	})

	t.Run("keeps supplied tone", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockWishRepository()
		service := wish.NewWishService(repo, repository.NewMockMediaRepository())
		repo.On("Create", ctx, mock.Anything).Return(nil)

		// Act
		result, err := service.SubmitWish(ctx, domain.Wish{Name: "Meera", OriginalWish: "Yay", Tone: "funny", Language: "hi-IN"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "funny", result.Tone)
		assert.Equal(t, "hi-IN", result.Language)
	})

	t.Run("name and wish required", func(t *testing.T) {
		// Arrange
		repo := repository.NewMockWishRepository()
		service := wish.NewWishService(repo, repository.NewMockMediaRepository())

		// Act
		_, err := service.SubmitWish(context.Background(), domain.Wish{Name: "Meera", OriginalWish: "   "})

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestWishService_LikeWish(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := repository.NewMockWishRepository()
	service := wish.NewWishService(repo, repository.NewMockMediaRepository())
	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(&domain.Wish{ID: id, Likes: 0}, nil)
	repo.On("UpdateLikes", ctx, id, 0).Return(nil)

	// Act
	likes, err := service.LikeWish(ctx, id, domain.LikeActionUnlike)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, likes)
	repo.AssertExpectations(t)
}

func TestWishService_GetStats(t *testing.T) {

	t.Run("adds media likes", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockWishRepository()
		mediaRepo := repository.NewMockMediaRepository()
		service := wish.NewWishService(repo, mediaRepo)
		repo.On("Stats", ctx).Return(&domain.WishStats{
			TotalWishes:    3,
			ApprovedWishes: 2,
			TotalLikes:     5,
			ToneStats:      map[string]int{"heartfelt": 3},
			LanguageStats:  map[string]int{"en-IN": 3},
		}, nil)
		mediaRepo.On("SumLikes", ctx).Return(7, nil)

		// Act
		stats, err := service.GetStats(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 12, stats.TotalLikes)
		assert.Equal(t, 3, stats.TotalWishes)
		assert.Equal(t, 3, stats.ToneStats["heartfelt"])
	})

	t.Run("media error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockWishRepository()
		mediaRepo := repository.NewMockMediaRepository()
		service := wish.NewWishService(repo, mediaRepo)
		repo.On("Stats", ctx).Return(&domain.WishStats{}, nil)
		mediaRepo.On("SumLikes", ctx).Return(0, errors.New("boom"))

		// Act
		stats, err := service.GetStats(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}

func TestWishService_ListWishes(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := repository.NewMockWishRepository()
	service := wish.NewWishService(repo, repository.NewMockMediaRepository())
	repo.On("ListApproved", ctx, wish.DefaultListLimit, 0).Return([]domain.Wish{{Name: "a"}}, nil)

	// Act
	wishes, err := service.ListWishes(ctx, -1, -5)

	// Assert
	require.NoError(t, err)
	assert.Len(t, wishes, 1)
}
