package repository

import (
	"context"
	"fmt"

	"trek-booking/internal/data/entity"
	"trek-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GuideRepository interface {
	Create(ctx context.Context, guide *entity.Guide) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error)
	FindAll(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Guide, error)
	CountAll(ctx context.Context, onlyActive bool) (int64, error)
	Update(ctx context.Context, guide *entity.Guide) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type guideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuideRepository(db database.PgxIface, log *zap.Logger) GuideRepository {
	return &guideRepository{
		db:  db,
		log: log,
	}
}

const guideColumns = `id, name, bio, email, phone, experience_years,
		       languages, photo_url, is_active, created_at, updated_at, deleted_at`

func scanGuide(row pgx.Row) (*entity.Guide, error) {
	var guide entity.Guide
	err := row.Scan(
		&guide.ID,
		&guide.Name,
		&guide.Bio,
		&guide.Email,
		&guide.Phone,
		&guide.ExperienceYears,
		&guide.Languages,
		&guide.PhotoURL,
		&guide.IsActive,
		&guide.CreatedAt,
		&guide.UpdatedAt,
		&guide.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (gr *guideRepository) Create(ctx context.Context, guide *entity.Guide) error {
	query := `
		INSERT INTO guides (id, name, bio, email, phone, experience_years,
		                   languages, photo_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := gr.db.Exec(ctx, query,
		guide.ID,
		guide.Name,
		guide.Bio,
		guide.Email,
		guide.Phone,
		guide.ExperienceYears,
		guide.Languages,
		guide.PhotoURL,
		guide.IsActive,
		guide.CreatedAt,
		guide.UpdatedAt,
	)

	if err != nil {
		gr.log.Error("Failed to create guide",
			zap.Error(err),
			zap.String("name", guide.Name),
		)
		return fmt.Errorf("create guide %s: %w", guide.Name, err)
	}

	return nil
}

func (gr *guideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error) {
	query := `
		SELECT ` + guideColumns + `
		FROM guides
		WHERE id = $1 AND deleted_at IS NULL
	`

	guide, err := scanGuide(gr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		gr.log.Error("Failed to find guide by ID",
			zap.Error(err),
			zap.String("guide_id", id.String()),
		)
		return nil, fmt.Errorf("find guide by ID %s: %w", id.String(), err)
	}

	return guide, nil
}

func (gr *guideRepository) FindAll(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Guide, error) {
	query := `
		SELECT ` + guideColumns + `
		FROM guides
		WHERE deleted_at IS NULL
	`
	if onlyActive {
		query += " AND is_active = TRUE"
	}
	query += `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := gr.db.Query(ctx, query, limit, offset)
	if err != nil {
		gr.log.Error("Failed to get guides", zap.Error(err))
		return nil, fmt.Errorf("find all guides: %w", err)
	}
	defer rows.Close()

	var guides []*entity.Guide
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			gr.log.Error("Failed to scan guide row", zap.Error(err))
			return nil, fmt.Errorf("scan guide row: %w", err)
		}
		guides = append(guides, guide)
	}

	if err := rows.Err(); err != nil {
		gr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate guide rows: %w", err)
	}

	return guides, nil
}

func (gr *guideRepository) CountAll(ctx context.Context, onlyActive bool) (int64, error) {
	query := `SELECT COUNT(*) FROM guides WHERE deleted_at IS NULL`
	if onlyActive {
		query += " AND is_active = TRUE"
	}

	var count int64
	err := gr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		gr.log.Error("Database error counting guides", zap.Error(err))
		return 0, fmt.Errorf("count all guides: %w", err)
	}

	return count, nil
}

func (gr *guideRepository) Update(ctx context.Context, guide *entity.Guide) error {
	query := `
		UPDATE guides
		SET name = $2, bio = $3, email = $4, phone = $5,
		    experience_years = $6, languages = $7, photo_url = $8,
		    is_active = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := gr.db.Exec(ctx, query,
		guide.ID,
		guide.Name,
		guide.Bio,
		guide.Email,
		guide.Phone,
		guide.ExperienceYears,
		guide.Languages,
		guide.PhotoURL,
		guide.IsActive,
		guide.UpdatedAt,
	)

	if err != nil {
		gr.log.Error("Failed to update guide",
			zap.Error(err),
			zap.String("guide_id", guide.ID.String()),
		)
		return fmt.Errorf("update guide %s: %w", guide.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guide %s not found or already deleted", guide.ID.String())
	}

	return nil
}

func (gr *guideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE guides SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := gr.db.Exec(ctx, query, id)
	if err != nil {
		gr.log.Error("Failed to delete guide",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete guide %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guide %s not found", id.String())
	}

	return nil
}
