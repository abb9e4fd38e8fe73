package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/google/uuid"
)

type sqlReminderRepository struct {
	db SQLQuerier
}

// NewSqlReminderRepository creates sqlReminderRepository that implements port.ReminderRepository
func NewSqlReminderRepository(db SQLQuerier) port.ReminderRepository {
	return &sqlReminderRepository{
		db: db,
	}
}

// Create inserts a reminder
func (s *sqlReminderRepository) Create(ctx context.Context, reminder domain.Reminder) error {
	query := `
		INSERT INTO reminders (id, email, schedule, sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	var sentAt sql.NullTime
	if reminder.SentAt != nil {
		sentAt = sql.NullTime{Time: *reminder.SentAt, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.Email,
		reminder.Schedule,
		sentAt,
		reminder.CreatedAt,
		reminder.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reminder %s : %w", reminder.ID, domain.ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// List returns every reminder, newest first
func (s *sqlReminderRepository) List(ctx context.Context) ([]domain.Reminder, error) {
	query := `
		SELECT id, email, schedule, sent_at, created_at, updated_at
		FROM reminders
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]domain.Reminder, 0)
	for rows.Next() {
		var reminderDB dbReminder
		if err := rows.Scan(
			&reminderDB.ID,
			&reminderDB.Email,
			&reminderDB.Schedule,
			&reminderDB.SentAt,
			&reminderDB.CreatedAt,
			&reminderDB.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning reminder: %w", err)
		}
		reminders = append(reminders, *reminderDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}

	return reminders, nil
}

// Delete removes a reminder
func (s *sqlReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrReminderNotFound)
}

// dbReminder represents a reminder row in DB
type dbReminder struct {
	ID        uuid.UUID    `db:"id"`
	Email     string       `db:"email"`
	Schedule  string       `db:"schedule"`
	SentAt    sql.NullTime `db:"sent_at"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// ToDomain converts to domain.Reminder
func (r *dbReminder) ToDomain() *domain.Reminder {
	reminder := &domain.Reminder{
		ID:        r.ID,
		Email:     r.Email,
		Schedule:  r.Schedule,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.SentAt.Valid {
		sentAt := r.SentAt.Time
		reminder.SentAt = &sentAt
	}
	return reminder
}
