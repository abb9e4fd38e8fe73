package port

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// MediaRepository is an interface to define media record interactions
type MediaRepository interface {
	Create(ctx context.Context, media domain.Media) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	List(ctx context.Context, limit int, lastVisible *uuid.UUID) ([]domain.Media, error)
	Update(ctx context.Context, id uuid.UUID, update domain.MediaUpdate) error
	UpdateLikes(ctx context.Context, id uuid.UUID, likes int) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumLikes(ctx context.Context) (int, error)
}

// ObjectStore is an interface to define object storage interactions
type ObjectStore interface {
	Put(ctx context.Context, localPath string, key string, opts domain.ObjectOptions) (*domain.StoredObject, error)
	DurableURL(ctx context.Context, object domain.StoredObject) (string, error)
	Delete(ctx context.Context, key string) error
}

// MediaService is an interface to define media service
type MediaService interface {
	HandleUpload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error)
	GetMedia(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	ListMedia(ctx context.Context, limit int, lastVisible *uuid.UUID) ([]domain.Media, *uuid.UUID, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, update domain.MediaUpdate) (*domain.Media, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) (bool, error)
	LikeMedia(ctx context.Context, id uuid.UUID, action domain.LikeAction) (int, error)
}
