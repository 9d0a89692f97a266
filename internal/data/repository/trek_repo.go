package repository

import (
	"context"
	"errors"
	"fmt"

	"trek-booking/internal/data/entity"
	"trek-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// TrekFilter narrows public catalog listings.
type TrekFilter struct {
	Region     string
	Difficulty string
	OnlyActive bool
}

type TrekRepository interface {
	Create(ctx context.Context, trek *entity.Trek) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trek, error)
	FindAll(ctx context.Context, filter TrekFilter, limit, offset int) ([]*entity.Trek, error)
	CountAll(ctx context.Context, filter TrekFilter) (int64, error)
	Update(ctx context.Context, trek *entity.Trek) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type trekRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTrekRepository(db database.PgxIface, log *zap.Logger) TrekRepository {
	return &trekRepository{
		db:  db,
		log: log,
	}
}

const trekColumns = `id, title, slug, description, region, difficulty,
		       duration_days, max_altitude, price, max_group_size,
		       image_url, is_active, created_at, updated_at, deleted_at`

func scanTrek(row pgx.Row) (*entity.Trek, error) {
	var trek entity.Trek
	err := row.Scan(
		&trek.ID,
		&trek.Title,
		&trek.Slug,
		&trek.Description,
		&trek.Region,
		&trek.Difficulty,
		&trek.DurationDays,
		&trek.MaxAltitude,
		&trek.Price,
		&trek.MaxGroupSize,
		&trek.ImageURL,
		&trek.IsActive,
		&trek.CreatedAt,
		&trek.UpdatedAt,
		&trek.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trek, nil
}

func (tr *trekRepository) Create(ctx context.Context, trek *entity.Trek) error {
	query := `
		INSERT INTO treks (id, title, slug, description, region, difficulty,
		                  duration_days, max_altitude, price, max_group_size,
		                  image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := tr.db.Exec(ctx, query,
		trek.ID,
		trek.Title,
		trek.Slug,
		trek.Description,
		trek.Region,
		trek.Difficulty,
		trek.DurationDays,
		trek.MaxAltitude,
		trek.Price,
		trek.MaxGroupSize,
		trek.ImageURL,
		trek.IsActive,
		trek.CreatedAt,
		trek.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		tr.log.Error("Failed to create trek",
			zap.Error(err),
			zap.String("slug", trek.Slug),
		)
		return fmt.Errorf("create trek %s: %w", trek.Slug, err)
	}

	return nil
}

func (tr *trekRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trek, error) {
	query := `
		SELECT ` + trekColumns + `
		FROM treks
		WHERE id = $1 AND deleted_at IS NULL
	`

	trek, err := scanTrek(tr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find trek by ID",
			zap.Error(err),
			zap.String("trek_id", id.String()),
		)
		return nil, fmt.Errorf("find trek by ID %s: %w", id.String(), err)
	}

	return trek, nil
}

func buildTrekFilter(filter TrekFilter, args []any) (string, []any) {
	where := "WHERE deleted_at IS NULL"
	if filter.OnlyActive {
		where += " AND is_active = TRUE"
	}
	if filter.Region != "" {
		args = append(args, filter.Region)
		where += fmt.Sprintf(" AND region = $%d", len(args))
	}
	if filter.Difficulty != "" {
		args = append(args, filter.Difficulty)
		where += fmt.Sprintf(" AND difficulty = $%d", len(args))
	}
	return where, args
}

func (tr *trekRepository) FindAll(ctx context.Context, filter TrekFilter, limit, offset int) ([]*entity.Trek, error) {
	where, args := buildTrekFilter(filter, nil)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT `+trekColumns+`
		FROM treks
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := tr.db.Query(ctx, query, args...)
	if err != nil {
		tr.log.Error("Failed to get treks", zap.Error(err))
		return nil, fmt.Errorf("find all treks: %w", err)
	}
	defer rows.Close()

	var treks []*entity.Trek
	for rows.Next() {
		trek, err := scanTrek(rows)
		if err != nil {
			tr.log.Error("Failed to scan trek row", zap.Error(err))
			return nil, fmt.Errorf("scan trek row: %w", err)
		}
		treks = append(treks, trek)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate trek rows: %w", err)
	}

	return treks, nil
}

func (tr *trekRepository) CountAll(ctx context.Context, filter TrekFilter) (int64, error) {
	where, args := buildTrekFilter(filter, nil)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM treks %s`, where)

	var count int64
	err := tr.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		tr.log.Error("Database error counting treks", zap.Error(err))
		return 0, fmt.Errorf("count all treks: %w", err)
	}

	return count, nil
}

func (tr *trekRepository) Update(ctx context.Context, trek *entity.Trek) error {
	query := `
		UPDATE treks
		SET title = $2, slug = $3, description = $4, region = $5,
		    difficulty = $6, duration_days = $7, max_altitude = $8,
		    price = $9, max_group_size = $10, image_url = $11,
		    is_active = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := tr.db.Exec(ctx, query,
		trek.ID,
		trek.Title,
		trek.Slug,
		trek.Description,
		trek.Region,
		trek.Difficulty,
		trek.DurationDays,
		trek.MaxAltitude,
		trek.Price,
		trek.MaxGroupSize,
		trek.ImageURL,
		trek.IsActive,
		trek.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		tr.log.Error("Failed to update trek",
			zap.Error(err),
			zap.String("trek_id", trek.ID.String()),
		)
		return fmt.Errorf("update trek %s: %w", trek.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trek %s not found or already deleted", trek.ID.String())
	}

	return nil
}

func (tr *trekRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE treks SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := tr.db.Exec(ctx, query, id)
	if err != nil {
		tr.log.Error("Failed to delete trek",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete trek %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trek %s not found", id.String())
	}

	return nil
}
