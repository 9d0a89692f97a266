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

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	FindAll(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entity.BlogPost, error)
	CountAll(ctx context.Context, publishedOnly bool) (int64, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogRepository(db database.PgxIface, log *zap.Logger) BlogRepository {
	return &blogRepository{
		db:  db,
		log: log,
	}
}

const blogColumns = `id, title, slug, excerpt, content, cover_image_url,
		       published, published_at, created_at, updated_at, deleted_at`

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.CoverImageURL,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (br *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, content,
		                       cover_image_url, published, published_at,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := br.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.CoverImageURL,
		post.Published,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		br.log.Error("Failed to create blog post",
			zap.Error(err),
			zap.String("slug", post.Slug),
		)
		return fmt.Errorf("create blog post %s: %w", post.Slug, err)
	}

	return nil
}

func (br *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE id = $1 AND deleted_at IS NULL
	`

	post, err := scanBlogPost(br.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find blog post by ID",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return nil, fmt.Errorf("find blog post by ID %s: %w", id.String(), err)
	}

	return post, nil
}

func (br *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE slug = $1 AND deleted_at IS NULL
	`

	post, err := scanBlogPost(br.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find blog post by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find blog post by slug %s: %w", slug, err)
	}

	return post, nil
}

func (br *blogRepository) FindAll(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entity.BlogPost, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE deleted_at IS NULL
	`
	if publishedOnly {
		query += " AND published = TRUE"
	}
	query += `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := br.db.Query(ctx, query, limit, offset)
	if err != nil {
		br.log.Error("Failed to get blog posts", zap.Error(err))
		return nil, fmt.Errorf("find all blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*entity.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			br.log.Error("Failed to scan blog post row", zap.Error(err))
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		br.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate blog post rows: %w", err)
	}

	return posts, nil
}

func (br *blogRepository) CountAll(ctx context.Context, publishedOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM blog_posts WHERE deleted_at IS NULL`
	if publishedOnly {
		query += " AND published = TRUE"
	}

	var count int64
	err := br.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		br.log.Error("Database error counting blog posts", zap.Error(err))
		return 0, fmt.Errorf("count all blog posts: %w", err)
	}

	return count, nil
}

func (br *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, excerpt = $4, content = $5,
		    cover_image_url = $6, published = $7, published_at = $8,
		    updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := br.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.CoverImageURL,
		post.Published,
		post.PublishedAt,
		post.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		br.log.Error("Failed to update blog post",
			zap.Error(err),
			zap.String("post_id", post.ID.String()),
		)
		return fmt.Errorf("update blog post %s: %w", post.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found or already deleted", post.ID.String())
	}

	return nil
}

func (br *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE blog_posts SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := br.db.Exec(ctx, query, id)
	if err != nil {
		br.log.Error("Failed to delete blog post",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete blog post %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", id.String())
	}

	return nil
}
