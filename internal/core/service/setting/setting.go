package setting

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type settingService struct {
	uow port.UnitOfWork
}

// NewSettingService creates a new settings service
func NewSettingService(uow port.UnitOfWork) port.SettingService {
	return &settingService{uow: uow}
}

// GetAllSettings returns every category, seeding the wedding defaults on first read
func (s *settingService) GetAllSettings(ctx context.Context) (map[string]domain.SettingFields, error) {
	all, err := s.uow.SettingRepo().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > 0 {
		return all, nil
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		existing, err := uow.SettingRepo().List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			all = existing
			return nil
		}

		defaults := domain.DefaultWeddingSettings()
		if err := uow.SettingRepo().Merge(ctx, domain.WeddingSettingsCategory, defaults); err != nil {
			return err
		}
		all = map[string]domain.SettingFields{domain.WeddingSettingsCategory: defaults}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not seed default settings: %w", txErr)
	}

	return all, nil
}

func (s *settingService) GetSettings(ctx context.Context, category string) (domain.SettingFields, error) {
	if strings.TrimSpace(category) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.uow.SettingRepo().Get(ctx, category)
}

// UpdateSettings merges fields into the category, creating it if needed
func (s *settingService) UpdateSettings(ctx context.Context, category string, fields domain.SettingFields) error {
	if strings.TrimSpace(category) == "" || len(fields) == 0 {
		return domain.ErrInvalidInput
	}
	return s.uow.SettingRepo().Merge(ctx, category, fields)
}

func (s *settingService) UpdateSettingField(ctx context.Context, category string, field string, value any) error {
	if strings.TrimSpace(category) == "" || strings.TrimSpace(field) == "" {
		return domain.ErrInvalidInput
	}
	return s.uow.SettingRepo().SetField(ctx, category, field, value)
}
