package port

import (
	"context"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// SettingRepository is an interface to define settings repository interactions
type SettingRepository interface {
	List(ctx context.Context) (map[string]domain.SettingFields, error)
	Get(ctx context.Context, category string) (domain.SettingFields, error)
	Merge(ctx context.Context, category string, fields domain.SettingFields) error
	SetField(ctx context.Context, category string, field string, value any) error
}

// SettingService is an interface to define settings service
type SettingService interface {
	GetAllSettings(ctx context.Context) (map[string]domain.SettingFields, error)
	GetSettings(ctx context.Context, category string) (domain.SettingFields, error)
	UpdateSettings(ctx context.Context, category string, fields domain.SettingFields) error
	UpdateSettingField(ctx context.Context, category string, field string, value any) error
}
