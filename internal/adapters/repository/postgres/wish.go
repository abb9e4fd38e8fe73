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

const wishColumns = `id, name, relation, email, original_wish, enhanced_wish, tone, artwork_style,
	artwork_prompt, language, likes, is_approved, created_at, updated_at`

type sqlWishRepository struct {
	db SQLQuerier
}

// NewSqlWishRepository creates sqlWishRepository that implements port.WishRepository
func NewSqlWishRepository(db SQLQuerier) port.WishRepository {
	return &sqlWishRepository{
		db: db,
	}
}

// Create inserts a wish
func (s *sqlWishRepository) Create(ctx context.Context, wish domain.Wish) error {
	query := `
		INSERT INTO wishes (` + wishColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := s.db.ExecContext(ctx, query,
		wish.ID,
		wish.Name,
		wish.Relation,
		wish.Email,
		wish.OriginalWish,
		wish.EnhancedWish,
		wish.Tone,
		wish.ArtworkStyle,
		wish.ArtworkPrompt,
		wish.Language,
		wish.Likes,
		wish.IsApproved,
		wish.CreatedAt,
		wish.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("wish %s : %w", wish.ID, domain.ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// FindByID finds a wish by id
func (s *sqlWishRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Wish, error) {
	query := `SELECT ` + wishColumns + ` FROM wishes WHERE id = $1`

	var wishDB dbWish
	if err := wishDB.scan(s.db.QueryRowContext(ctx, query, id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWishNotFound
		}
		return nil, err
	}

	return wishDB.ToDomain(), nil
}

// ListApproved returns approved wishes, newest first
func (s *sqlWishRepository) ListApproved(ctx context.Context, limit int, offset int) ([]domain.Wish, error) {
	query := `
		SELECT ` + wishColumns + `
		FROM wishes
		WHERE is_approved = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying wishes: %w", err)
	}
	defer rows.Close()

	wishes := make([]domain.Wish, 0, limit)
	for rows.Next() {
		var wishDB dbWish
		if err := wishDB.scan(rows); err != nil {
			return nil, fmt.Errorf("error scanning wish: %w", err)
		}
		wishes = append(wishes, *wishDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishes: %w", err)
	}

	return wishes, nil
}

// Update applies the non-nil fields, the enhanced text follows the original
func (s *sqlWishRepository) Update(ctx context.Context, id uuid.UUID, update domain.WishUpdate) error {
	var set setClause
	if update.Name != nil {
		set.add("name", *update.Name)
	}
	if update.Relation != nil {
		set.add("relation", *update.Relation)
	}
	if update.Email != nil {
		set.add("email", *update.Email)
	}
	if update.OriginalWish != nil {
		set.add("original_wish", *update.OriginalWish)
		set.add("enhanced_wish", *update.OriginalWish)
	}
	if update.Tone != nil {
		set.add("tone", *update.Tone)
	}
	if update.ArtworkStyle != nil {
		set.add("artwork_style", *update.ArtworkStyle)
	}
	if update.ArtworkPrompt != nil {
		set.add("artwork_prompt", *update.ArtworkPrompt)
	}
	if update.Language != nil {
		set.add("language", *update.Language)
	}
	if update.IsApproved != nil {
		set.add("is_approved", *update.IsApproved)
	}
	set.add("updated_at", time.Now().UTC())

	set.args = append(set.args, id)
	query := fmt.Sprintf(`UPDATE wishes SET %s WHERE id = $%d`, set.sql(), len(set.args))

	result, err := s.db.ExecContext(ctx, query, set.args...)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrWishNotFound)
}

// UpdateLikes sets the like count
func (s *sqlWishRepository) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) error {
	query := `UPDATE wishes SET likes = $1, updated_at = NOW() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, likes, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrWishNotFound)
}

// Delete removes a wish
func (s *sqlWishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM wishes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrWishNotFound)
}

// Stats aggregates wish counts with tone and language breakdowns
func (s *sqlWishRepository) Stats(ctx context.Context) (*domain.WishStats, error) {
	stats := &domain.WishStats{
		ToneStats:     map[string]int{},
		LanguageStats: map[string]int{},
	}

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_approved), COALESCE(SUM(likes), 0)
		FROM wishes`
	if err := s.db.QueryRowContext(ctx, query).Scan(&stats.TotalWishes, &stats.ApprovedWishes, &stats.TotalLikes); err != nil {
		return nil, fmt.Errorf("error counting wishes: %w", err)
	}

	if err := s.countBy(ctx, "tone", stats.ToneStats); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "language", stats.LanguageStats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *sqlWishRepository) countBy(ctx context.Context, column string, into map[string]int) error {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT %s, COUNT(*) FROM wishes GROUP BY %s`, column, column))
	if err != nil {
		return fmt.Errorf("error grouping wishes by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("error scanning %s count: %w", column, err)
		}
		into[key] = count
	}
	return rows.Err()
}

// dbWish represents a wish row in DB
type dbWish struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Relation      string    `db:"relation"`
	Email         string    `db:"email"`
	OriginalWish  string    `db:"original_wish"`
	EnhancedWish  string    `db:"enhanced_wish"`
	Tone          string    `db:"tone"`
	ArtworkStyle  string    `db:"artwork_style"`
	ArtworkPrompt string    `db:"artwork_prompt"`
	Language      string    `db:"language"`
	Likes         int       `db:"likes"`
	IsApproved    bool      `db:"is_approved"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (w *dbWish) scan(row rowScanner) error {
	return row.Scan(
		&w.ID,
		&w.Name,
		&w.Relation,
		&w.Email,
		&w.OriginalWish,
		&w.EnhancedWish,
		&w.Tone,
		&w.ArtworkStyle,
		&w.ArtworkPrompt,
		&w.Language,
		&w.Likes,
		&w.IsApproved,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
}

// ToDomain converts to domain.Wish
func (w *dbWish) ToDomain() *domain.Wish {
	return &domain.Wish{
		ID:            w.ID,
		Name:          w.Name,
		Relation:      w.Relation,
		Email:         w.Email,
		OriginalWish:  w.OriginalWish,
		EnhancedWish:  w.EnhancedWish,
		Tone:          w.Tone,
		ArtworkStyle:  w.ArtworkStyle,
		ArtworkPrompt: w.ArtworkPrompt,
		Language:      w.Language,
		Likes:         w.Likes,
		IsApproved:    w.IsApproved,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
