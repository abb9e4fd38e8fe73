package section

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

func (s *sectionService) UpdateSection(ctx context.Context, id string, update domain.SectionUpdate) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return s.uow.SectionRepo().Update(ctx, id, update)
}

// BulkUpdateSections applies every patch or none of them
func (s *sectionService) BulkUpdateSections(ctx context.Context, patches []domain.SectionPatch) error {
	for _, patch := range patches {
		if strings.TrimSpace(patch.ID) == "" {
			return fmt.Errorf("%w: section id is required", domain.ErrInvalidInput)
		}
	}

	return s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		for _, patch := range patches {
			if err := uow.SectionRepo().Update(ctx, patch.ID, patch.Update); err != nil {
				return fmt.Errorf("section %s: %w", patch.ID, err)
			}
		}
		return nil
	})
}

// ResetSections replaces every section with the defaults
func (s *sectionService) ResetSections(ctx context.Context) ([]domain.Section, error) {
	defaults := domain.DefaultSections()

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.SectionRepo().DeleteAll(ctx); err != nil {
			return err
		}
		return uow.SectionRepo().CreateMany(ctx, defaults)
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not reset sections: %w", txErr)
	}

	return defaults, nil
}
