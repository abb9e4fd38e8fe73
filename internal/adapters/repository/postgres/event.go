package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/google/uuid"
)

const eventColumns = `id, event_type, event_name, occurred_at, user_id, session_id, page, metadata, created_at`

type sqlEventRepository struct {
	db SQLQuerier
}

// NewSqlEventRepository creates sqlEventRepository that implements port.EventRepository
func NewSqlEventRepository(db SQLQuerier) port.EventRepository {
	return &sqlEventRepository{
		db: db,
	}
}

// Create inserts an event, redelivered events are ignored
func (s *sqlEventRepository) Create(ctx context.Context, event domain.EventLog) error {
	query := `
		INSERT INTO event_logs (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`

	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	rawMetadata, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("error encoding event metadata: %w", err)
	}

	var userID sql.NullString
	if event.UserID != nil {
		userID = sql.NullString{String: *event.UserID, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, query,
		event.ID,
		event.EventType,
		event.EventName,
		event.Timestamp,
		userID,
		event.SessionID,
		event.Page,
		string(rawMetadata),
		event.CreatedAt,
	)
	return err
}

// List returns events matching the filter, newest first
func (s *sqlEventRepository) List(ctx context.Context, filter domain.EventFilter) ([]domain.EventLog, error) {
	var conditions []string
	var args []any
	where := func(column string, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	where("event_type", filter.EventType)
	where("page", filter.Page)
	where("user_id", filter.UserID)
	where("session_id", filter.SessionID)

	query := `SELECT ` + eventColumns + ` FROM event_logs`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	return s.query(ctx, query, args...)
}

// FindBetween returns events that occurred in [start, end], a nil bound is open
func (s *sqlEventRepository) FindBetween(ctx context.Context, start *time.Time, end *time.Time) ([]domain.EventLog, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM event_logs
		WHERE ($1::timestamptz IS NULL OR occurred_at >= $1)
		  AND ($2::timestamptz IS NULL OR occurred_at <= $2)
		ORDER BY occurred_at ASC`

	var from, to sql.NullTime
	if start != nil {
		from = sql.NullTime{Time: *start, Valid: true}
	}
	if end != nil {
		to = sql.NullTime{Time: *end, Valid: true}
	}

	return s.query(ctx, query, from, to)
}

func (s *sqlEventRepository) query(ctx context.Context, query string, args ...any) ([]domain.EventLog, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.EventLog, 0)
	for rows.Next() {
		var eventDB dbEvent
		if err := rows.Scan(
			&eventDB.ID,
			&eventDB.EventType,
			&eventDB.EventName,
			&eventDB.OccurredAt,
			&eventDB.UserID,
			&eventDB.SessionID,
			&eventDB.Page,
			&eventDB.Metadata,
			&eventDB.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		event, err := eventDB.ToDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// dbEvent represents an event_logs row in DB
type dbEvent struct {
	ID         uuid.UUID      `db:"id"`
	EventType  string         `db:"event_type"`
	EventName  string         `db:"event_name"`
	OccurredAt time.Time      `db:"occurred_at"`
	UserID     sql.NullString `db:"user_id"`
	SessionID  string         `db:"session_id"`
	Page       string         `db:"page"`
	Metadata   []byte         `db:"metadata"`
	CreatedAt  time.Time      `db:"created_at"`
}

// ToDomain converts to domain.EventLog
func (e *dbEvent) ToDomain() (*domain.EventLog, error) {
	event := &domain.EventLog{
		ID:        e.ID,
		EventType: e.EventType,
		EventName: e.EventName,
		Timestamp: e.OccurredAt,
		SessionID: e.SessionID,
		Page:      e.Page,
		Metadata:  map[string]any{},
		CreatedAt: e.CreatedAt,
	}
	if e.UserID.Valid {
		userID := e.UserID.String
		event.UserID = &userID
	}
	if len(e.Metadata) > 0 {
		if err := json.Unmarshal(e.Metadata, &event.Metadata); err != nil {
			return nil, fmt.Errorf("error decoding metadata of event %s: %w", e.ID, err)
		}
	}
	return event, nil
}
