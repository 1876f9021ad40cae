// Package repository provides pgx-backed persistence for blog posts.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradegate_backend/platform/apperr"
)

const (
	postNotFoundMessage = "post not found"
	slugTakenMessage    = "slug already in use"
)

// Post is the database model for a blog post.
type Post struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Excerpt     *string
	Body        string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreatePostParams contains the fields for creating a post.
type CreatePostParams struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Excerpt     *string
	Body        string
	Published   bool
	PublishedAt *time.Time
}

// UpdatePostParams contains the fields for a partial post update.
// Nil pointers leave the column untouched; SetPublishedAt forces the
// published_at column to the given value (including NULL).
type UpdatePostParams struct {
	ID             uuid.UUID
	Slug           *string
	Title          *string
	Excerpt        *string
	Body           *string
	Published      *bool
	PublishedAt    *time.Time
	SetPublishedAt bool
}

// ListPostsParams contains filters and pagination for listing posts.
type ListPostsParams struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

// Repository provides persistence for blog posts.
type Repository interface {
	Create(ctx context.Context, params CreatePostParams) (Post, error)
	Update(ctx context.Context, params UpdatePostParams) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	GetBySlug(ctx context.Context, slug string) (Post, error)
	List(ctx context.Context, params ListPostsParams) ([]Post, int, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

// Repo is the pgx implementation of Repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new blog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const postColumns = `id, slug, title, excerpt, body, published, published_at, created_at, updated_at`

func scanPost(row pgx.Row) (Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Body,
		&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create inserts a post. Slug collisions surface as conflicts.
func (r *Repo) Create(ctx context.Context, params CreatePostParams) (Post, error) {
	query := `
		INSERT INTO posts (id, slug, title, excerpt, body, published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + postColumns

	post, err := scanPost(r.pool.QueryRow(ctx, query,
		params.ID, params.Slug, params.Title, params.Excerpt,
		params.Body, params.Published, params.PublishedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return Post{}, apperr.Wrap(apperr.KindConflict, slugTakenMessage, err)
		}
		return Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Update applies a partial update; nil fields keep their values except for
// published_at, which SetPublishedAt overrides explicitly so unpublishing
// can null it out.
func (r *Repo) Update(ctx context.Context, params UpdatePostParams) (Post, error) {
	query := `
		UPDATE posts
		SET slug = COALESCE($2, slug),
			title = COALESCE($3, title),
			excerpt = COALESCE($4, excerpt),
			body = COALESCE($5, body),
			published = COALESCE($6, published),
			published_at = CASE WHEN $7 THEN $8 ELSE published_at END,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.pool.QueryRow(ctx, query,
		params.ID, params.Slug, params.Title, params.Excerpt, params.Body,
		params.Published, params.SetPublishedAt, params.PublishedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperr.NotFound(postNotFoundMessage)
		}
		if isUniqueViolation(err) {
			return Post{}, apperr.Wrap(apperr.KindConflict, slugTakenMessage, err)
		}
		return Post{}, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete removes a post.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(postNotFoundMessage)
	}
	return nil
}

// GetByID retrieves a post by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperr.NotFound(postNotFoundMessage)
		}
		return Post{}, fmt.Errorf("get post by id: %w", err)
	}
	return post, nil
}

// GetBySlug retrieves a post by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperr.NotFound(postNotFoundMessage)
		}
		return Post{}, fmt.Errorf("get post by slug: %w", err)
	}
	return post, nil
}

// List lists posts newest first. PublishedOnly orders by publication date
// for the public site; the admin listing goes by creation date.
func (r *Repo) List(ctx context.Context, params ListPostsParams) ([]Post, int, error) {
	where := ``
	order := `ORDER BY created_at DESC`
	if params.PublishedOnly {
		where = `WHERE published = true`
		order = `ORDER BY published_at DESC NULLS LAST`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts `+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+postColumns+` FROM posts %s %s LIMIT $1 OFFSET $2`, where, order)
	rows, err := r.pool.Query(ctx, query, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("iterate posts: %w", rows.Err())
	}

	return posts, total, nil
}

// SlugExists checks whether a slug is taken by another post.
func (r *Repo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check post slug: %w", err)
	}
	return exists, nil
}
