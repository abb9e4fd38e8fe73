package section

import (
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type sectionService struct {
	uow port.UnitOfWork
}

// NewSectionService creates a new section service
func NewSectionService(uow port.UnitOfWork) port.SectionService {
	return &sectionService{uow: uow}
}
