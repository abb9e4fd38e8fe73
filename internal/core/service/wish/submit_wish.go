package wish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// SubmitWish stores a new approved wish with defaults applied
func (s *wishService) SubmitWish(ctx context.Context, wish domain.Wish) (*domain.Wish, error) {
	wish.Name = strings.TrimSpace(wish.Name)
	wish.OriginalWish = strings.TrimSpace(wish.OriginalWish)
	if wish.Name == "" || wish.OriginalWish == "" {
		return nil, fmt.Errorf("%w: name and wish are required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	wish.ID = uuid.New()
	wish.EnhancedWish = wish.OriginalWish
	wish.Tone = withDefault(wish.Tone, domain.DefaultWishTone)
	wish.ArtworkStyle = withDefault(wish.ArtworkStyle, domain.DefaultWishArtworkStyle)
	wish.Language = withDefault(wish.Language, domain.DefaultWishLanguage)
	wish.Likes = 0
	wish.IsApproved = true
	wish.CreatedAt = now
	wish.UpdatedAt = now

	if err := s.repo.Create(ctx, wish); err != nil {
		return nil, err
	}

	return &wish, nil
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
