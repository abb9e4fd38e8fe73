package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/lib/pq"
)

type sqlSettingRepository struct {
	db SQLQuerier
}

// NewSqlSettingRepository creates sqlSettingRepository that implements port.SettingRepository
func NewSqlSettingRepository(db SQLQuerier) port.SettingRepository {
	return &sqlSettingRepository{
		db: db,
	}
}

// List returns every settings category
func (s *sqlSettingRepository) List(ctx context.Context) (map[string]domain.SettingFields, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, fields FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("error querying settings: %w", err)
	}
	defer rows.Close()

	all := make(map[string]domain.SettingFields)
	for rows.Next() {
		var category string
		var raw []byte
		if err := rows.Scan(&category, &raw); err != nil {
			return nil, fmt.Errorf("error scanning settings: %w", err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("error decoding settings %s: %w", category, err)
		}
		all[category] = fields
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}

	return all, nil
}

// Get returns one settings category
func (s *sqlSettingRepository) Get(ctx context.Context, category string) (domain.SettingFields, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT fields FROM settings WHERE category = $1`, category).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingNotFound
		}
		return nil, err
	}
	return decodeFields(raw)
}

// Merge creates the category or merges fields into it, existing keys are overwritten
func (s *sqlSettingRepository) Merge(ctx context.Context, category string, fields domain.SettingFields) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO settings (category, fields, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (category) DO UPDATE SET
			fields = settings.fields || EXCLUDED.fields,
			updated_at = NOW()`

	_, err = s.db.ExecContext(ctx, query, category, string(raw))
	return err
}

// SetField sets a single key of an existing category
func (s *sqlSettingRepository) SetField(ctx context.Context, category string, field string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	query := `
		UPDATE settings
		SET fields = jsonb_set(fields, $2::text[], $3::jsonb, true), updated_at = NOW()
		WHERE category = $1`

	result, err := s.db.ExecContext(ctx, query, category, pq.Array([]string{field}), string(raw))
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrSettingNotFound)
}

func decodeFields(raw []byte) (domain.SettingFields, error) {
	fields := domain.SettingFields{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
