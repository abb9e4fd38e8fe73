package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultWishTone         = "heartfelt"
	DefaultWishArtworkStyle = "cartoon"
	DefaultWishLanguage     = "en-IN"
)

// Wish represents a guest wish
type Wish struct {
	ID            uuid.UUID
	Name          string
	Relation      string
	Email         string
	OriginalWish  string
	EnhancedWish  string
	Tone          string
	ArtworkStyle  string
	ArtworkPrompt string
	Language      string
	Likes         int
	IsApproved    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WishUpdate represents the editable wish fields, nil means unchanged
type WishUpdate struct {
	Name          *string
	Relation      *string
	Email         *string
	OriginalWish  *string
	Tone          *string
	ArtworkStyle  *string
	ArtworkPrompt *string
	Language      *string
	IsApproved    *bool
}

// WishStats represents the wishes overview
type WishStats struct {
	TotalWishes    int
	ApprovedWishes int
	TotalLikes     int
	ToneStats      map[string]int
	LanguageStats  map[string]int
}
