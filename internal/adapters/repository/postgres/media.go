package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/google/uuid"
)

const mediaColumns = `id, file_name, storage_file_name, storage_url, storage_folder, mime_type, size, category,
	description, is_approved, likes, compressed, uploader_name, uploader_phone, device_id, upload_date, updated_at`

type sqlMediaRepository struct {
	db SQLQuerier
}

// NewSqlMediaRepository creates sqlMediaRepository that implements port.MediaRepository
func NewSqlMediaRepository(db SQLQuerier) port.MediaRepository {
	return &sqlMediaRepository{
		db: db,
	}
}

// Create inserts a media record
func (s *sqlMediaRepository) Create(ctx context.Context, media domain.Media) error {
	query := `
		INSERT INTO media (` + mediaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := s.db.ExecContext(ctx, query,
		media.ID,
		media.FileName,
		media.StorageFileName,
		media.StorageURL,
		media.StorageFolder,
		media.MimeType,
		media.Size,
		media.Category,
		media.Description,
		media.IsApproved,
		media.Likes,
		media.Compressed,
		nullString(media.UploaderName),
		nullString(media.UploaderPhone),
		nullString(media.DeviceID),
		media.UploadDate,
		media.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("media %s : %w", media.ID, domain.ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// FindByID finds a media record by id
func (s *sqlMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE id = $1`

	var mediaDB dbMedia
	if err := mediaDB.scan(s.db.QueryRowContext(ctx, query, id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, err
	}

	return mediaDB.ToDomain(), nil
}

// List returns media by likes then upload date, after the lastVisible row when it exists
func (s *sqlMediaRepository) List(ctx context.Context, limit int, lastVisible *uuid.UUID) ([]domain.Media, error) {
	var cursor any
	if lastVisible != nil {
		cursor = *lastVisible
	}

	query := `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE NOT EXISTS (SELECT 1 FROM media c WHERE c.id = $2::uuid)
		   OR (likes, upload_date, id) < (SELECT c.likes, c.upload_date, c.id FROM media c WHERE c.id = $2::uuid)
		ORDER BY likes DESC, upload_date DESC, id DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit, cursor)
	if err != nil {
		return nil, fmt.Errorf("error querying media: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Media, 0, limit)
	for rows.Next() {
		var mediaDB dbMedia
		if err := mediaDB.scan(rows); err != nil {
			return nil, fmt.Errorf("error scanning media: %w", err)
		}
		items = append(items, *mediaDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media: %w", err)
	}

	return items, nil
}

// Update applies the non-nil fields and stamps updated_at
func (s *sqlMediaRepository) Update(ctx context.Context, id uuid.UUID, update domain.MediaUpdate) error {
	var set setClause
	if update.FileName != nil {
		set.add("file_name", *update.FileName)
	}
	if update.Description != nil {
		set.add("description", *update.Description)
	}
	if update.IsApproved != nil {
		set.add("is_approved", *update.IsApproved)
	}
	if update.Category != nil {
		set.add("category", *update.Category)
	}
	set.add("updated_at", time.Now().UTC())

	set.args = append(set.args, id)
	query := fmt.Sprintf(`UPDATE media SET %s WHERE id = $%d`, set.sql(), len(set.args))

	result, err := s.db.ExecContext(ctx, query, set.args...)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrMediaNotFound)
}

// UpdateLikes sets the like count
func (s *sqlMediaRepository) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) error {
	query := `UPDATE media SET likes = $1, updated_at = NOW() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, likes, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrMediaNotFound)
}

// Delete removes a media record
func (s *sqlMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrMediaNotFound)
}

// SumLikes returns the total likes over all media
func (s *sqlMediaRepository) SumLikes(ctx context.Context) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(likes), 0) FROM media`).Scan(&total)
	return total, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// dbMedia represents a media row in DB
type dbMedia struct {
	ID              uuid.UUID      `db:"id"`
	FileName        string         `db:"file_name"`
	StorageFileName string         `db:"storage_file_name"`
	StorageURL      string         `db:"storage_url"`
	StorageFolder   string         `db:"storage_folder"`
	MimeType        string         `db:"mime_type"`
	Size            int64          `db:"size"`
	Category        string         `db:"category"`
	Description     string         `db:"description"`
	IsApproved      bool           `db:"is_approved"`
	Likes           int            `db:"likes"`
	Compressed      bool           `db:"compressed"`
	UploaderName    sql.NullString `db:"uploader_name"`
	UploaderPhone   sql.NullString `db:"uploader_phone"`
	DeviceID        sql.NullString `db:"device_id"`
	UploadDate      time.Time      `db:"upload_date"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

func (m *dbMedia) scan(row rowScanner) error {
	return row.Scan(
		&m.ID,
		&m.FileName,
		&m.StorageFileName,
		&m.StorageURL,
		&m.StorageFolder,
		&m.MimeType,
		&m.Size,
		&m.Category,
		&m.Description,
		&m.IsApproved,
		&m.Likes,
		&m.Compressed,
		&m.UploaderName,
		&m.UploaderPhone,
		&m.DeviceID,
		&m.UploadDate,
		&m.UpdatedAt,
	)
}

// ToDomain converts to domain.Media
func (m *dbMedia) ToDomain() *domain.Media {
	media := &domain.Media{
		ID:              m.ID,
		FileName:        m.FileName,
		StorageFileName: m.StorageFileName,
		StorageURL:      m.StorageURL,
		StorageFolder:   m.StorageFolder,
		MimeType:        m.MimeType,
		Size:            m.Size,
		Category:        m.Category,
		Description:     m.Description,
		IsApproved:      m.IsApproved,
		Likes:           m.Likes,
		Compressed:      m.Compressed,
		UploaderName:    m.UploaderName.String,
		UploaderPhone:   m.UploaderPhone.String,
		DeviceID:        m.DeviceID.String,
		UploadDate:      m.UploadDate,
	}
	if m.UpdatedAt.Valid {
		updatedAt := m.UpdatedAt.Time
		media.UpdatedAt = &updatedAt
	}
	return media
}
