package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tradegate_backend/platform/apperr"
)

const categoryNotFoundMessage = "category not found"

const categoryColumns = `id, slug, name, description, created_at, updated_at`

func scanCategory(row pgx.Row) (Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateCategory inserts a category. Slug collisions surface as conflicts.
func (r *Repo) CreateCategory(ctx context.Context, params CreateCategoryParams) (Category, error) {
	query := `
		INSERT INTO categories (id, slug, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns

	category, err := scanCategory(r.pool.QueryRow(ctx, query,
		params.ID, params.Slug, params.Name, params.Description,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return Category{}, apperr.Wrap(apperr.KindConflict, slugTakenMessage, err)
		}
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// UpdateCategory applies a partial update; nil fields keep their values.
func (r *Repo) UpdateCategory(ctx context.Context, params UpdateCategoryParams) (Category, error) {
	query := `
		UPDATE categories
		SET slug = COALESCE($2, slug),
			name = COALESCE($3, name),
			description = COALESCE($4, description),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + categoryColumns

	category, err := scanCategory(r.pool.QueryRow(ctx, query,
		params.ID, params.Slug, params.Name, params.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, apperr.NotFound(categoryNotFoundMessage)
		}
		if isUniqueViolation(err) {
			return Category{}, apperr.Wrap(apperr.KindConflict, slugTakenMessage, err)
		}
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory deletes a category. Products referencing it keep a NULL
// category via the schema's ON DELETE SET NULL.
func (r *Repo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(categoryNotFoundMessage)
	}
	return nil
}

// GetCategoryByID retrieves a category by ID.
func (r *Repo) GetCategoryByID(ctx context.Context, id uuid.UUID) (Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, apperr.NotFound(categoryNotFoundMessage)
		}
		return Category{}, fmt.Errorf("get category by id: %w", err)
	}
	return category, nil
}

// GetCategoryBySlug retrieves a category by slug.
func (r *Repo) GetCategoryBySlug(ctx context.Context, slug string) (Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, apperr.NotFound(categoryNotFoundMessage)
		}
		return Category{}, fmt.Errorf("get category by slug: %w", err)
	}
	return category, nil
}

// ListCategories lists all categories ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	items := make([]Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate categories: %w", rows.Err())
	}

	return items, nil
}

// CategorySlugExists checks whether a slug is taken by another category.
func (r *Repo) CategorySlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category slug: %w", err)
	}
	return exists, nil
}
