package section

import (
	"context"
	"fmt"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

// ListSections returns the sections by order, seeding the defaults on first read
func (s *sectionService) ListSections(ctx context.Context) ([]domain.Section, error) {
	sections, err := s.uow.SectionRepo().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sections) > 0 {
		return sections, nil
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		existing, err := uow.SectionRepo().List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			sections = existing
			return nil
		}

		sections = domain.DefaultSections()
		return uow.SectionRepo().CreateMany(ctx, sections)
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not seed default sections: %w", txErr)
	}

	return sections, nil
}
