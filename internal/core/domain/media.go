package domain

import (
	"time"

	"github.com/google/uuid"
)

// LikeAction represents a like toggle
type LikeAction string

const (
	LikeActionLike   LikeAction = "like"
	LikeActionUnlike LikeAction = "unlike"
)

// ApplyLike returns the new like count, never below zero
func ApplyLike(current int, action LikeAction) int {
	if action == LikeActionLike {
		return current + 1
	}
	if current <= 0 {
		return 0
	}
	return current - 1
}

// Media represents a stored media record
type Media struct {
	ID              uuid.UUID
	FileName        string
	StorageFileName string
	StorageURL      string
	StorageFolder   string
	MimeType        string
	Size            int64
	Category        string
	Description     string
	IsApproved      bool
	Likes           int
	Compressed      bool
	UploaderName    string
	UploaderPhone   string
	DeviceID        string
	UploadDate      time.Time
	UpdatedAt       *time.Time
}

// StorageKey is the object key addressing the media blob
func (m Media) StorageKey() string {
	return m.StorageFolder + "/" + m.StorageFileName
}

// MediaUpdate represents the editable media fields, nil means unchanged
type MediaUpdate struct {
	FileName    *string
	Description *string
	IsApproved  *bool
	Category    *string
}
