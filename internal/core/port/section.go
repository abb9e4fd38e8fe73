package port

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// SectionRepository is an interface to define section repository interactions
type SectionRepository interface {
	List(ctx context.Context) ([]domain.Section, error)
	Update(ctx context.Context, id string, update domain.SectionUpdate) error
	CreateMany(ctx context.Context, sections []domain.Section) error
	DeleteAll(ctx context.Context) error
}

// SectionService is an interface to define section service
type SectionService interface {
	ListSections(ctx context.Context) ([]domain.Section, error)
	UpdateSection(ctx context.Context, id string, update domain.SectionUpdate) error
	BulkUpdateSections(ctx context.Context, patches []domain.SectionPatch) error
	ResetSections(ctx context.Context) ([]domain.Section, error)
}
