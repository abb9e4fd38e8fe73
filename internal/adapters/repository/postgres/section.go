package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type sqlSectionRepository struct {
	db SQLQuerier
}

// NewSqlSectionRepository creates sqlSectionRepository that implements port.SectionRepository
func NewSqlSectionRepository(db SQLQuerier) port.SectionRepository {
	return &sqlSectionRepository{
		db: db,
	}
}

// List returns the sections in display order
func (s *sqlSectionRepository) List(ctx context.Context) ([]domain.Section, error) {
	query := `SELECT id, name, visible, sort_order, updated_at FROM sections ORDER BY sort_order ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	defer rows.Close()

	sections := make([]domain.Section, 0)
	for rows.Next() {
		var sectionDB dbSection
		if err := rows.Scan(&sectionDB.ID, &sectionDB.Name, &sectionDB.Visible, &sectionDB.Order, &sectionDB.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning section: %w", err)
		}
		sections = append(sections, *sectionDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sections: %w", err)
	}

	return sections, nil
}

// Update applies the non-nil fields of one section
func (s *sqlSectionRepository) Update(ctx context.Context, id string, update domain.SectionUpdate) error {
	var set setClause
	if update.Visible != nil {
		set.add("visible", *update.Visible)
	}
	if update.Order != nil {
		set.add("sort_order", *update.Order)
	}
	if update.Name != nil {
		set.add("name", *update.Name)
	}
	set.add("updated_at", time.Now().UTC())

	set.args = append(set.args, id)
	query := fmt.Sprintf(`UPDATE sections SET %s WHERE id = $%d`, set.sql(), len(set.args))

	result, err := s.db.ExecContext(ctx, query, set.args...)
	if err != nil {
		return err
	}
	return expectOneRow(result, fmt.Errorf("%w: %s", domain.ErrSectionNotFound, id))
}

// CreateMany inserts sections in one statement
func (s *sqlSectionRepository) CreateMany(ctx context.Context, sections []domain.Section) error {
	if len(sections) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(sections))
	args := make([]any, 0, len(sections)*4)
	for i, section := range sections {
		n := i * 4
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, NOW())", n+1, n+2, n+3, n+4))
		args = append(args, section.ID, section.Name, section.Visible, section.Order)
	}

	query := fmt.Sprintf(`INSERT INTO sections (id, name, visible, sort_order, updated_at) VALUES %s`,
		strings.Join(placeholders, ", "))

	_, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("sections : %w", domain.ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// DeleteAll removes every section
func (s *sqlSectionRepository) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sections`)
	return err
}

// dbSection represents a section row in DB
type dbSection struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Visible   bool         `db:"visible"`
	Order     int          `db:"sort_order"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

// ToDomain converts to domain.Section
func (s *dbSection) ToDomain() *domain.Section {
	section := &domain.Section{
		ID:      s.ID,
		Name:    s.Name,
		Visible: s.Visible,
		Order:   s.Order,
	}
	if s.UpdatedAt.Valid {
		updatedAt := s.UpdatedAt.Time
		section.UpdatedAt = &updatedAt
	}
	return section
}
