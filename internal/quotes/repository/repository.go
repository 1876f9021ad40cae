// Package repository provides pgx-backed persistence for quote requests.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradegate_backend/platform/apperr"
)

const quoteNotFoundMessage = "quote not found"

// Quote is the database model for a quote request.
type Quote struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	CompanyName   *string
	PhoneNumber   *string
	Message       *string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// QuoteItem is a single requested line on a quote. ProductName is a
// snapshot taken at submission time so the quote stays readable after the
// product is renamed or deleted.
type QuoteItem struct {
	ID          uuid.UUID
	QuoteID     uuid.UUID
	ProductID   *uuid.UUID
	ProductName string
	Quantity    int
	Notes       *string
}

// ListQuotesParams contains filters and pagination for listing quotes.
type ListQuotesParams struct {
	Status string
	Limit  int
	Offset int
}

// Repository provides persistence for quotes and their items.
type Repository interface {
	CreateWithItems(ctx context.Context, quote Quote, items []QuoteItem) error
	GetByID(ctx context.Context, id uuid.UUID) (Quote, error)
	GetItems(ctx context.Context, quoteID uuid.UUID) ([]QuoteItem, error)
	List(ctx context.Context, params ListQuotesParams) ([]Quote, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Quote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repo is the pgx implementation of Repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quotes repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

const quoteColumns = `id, customer_name, customer_email, company_name, phone_number, message, status, created_at, updated_at`

func scanQuote(row pgx.Row) (Quote, error) {
	var q Quote
	err := row.Scan(&q.ID, &q.CustomerName, &q.CustomerEmail, &q.CompanyName,
		&q.PhoneNumber, &q.Message, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

// CreateWithItems inserts a quote and its line items in a single
// transaction; any failure rolls back everything.
func (r *Repo) CreateWithItems(ctx context.Context, quote Quote, items []QuoteItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	quoteQuery := `
		INSERT INTO quotes (id, customer_name, customer_email, company_name, phone_number, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := tx.Exec(ctx, quoteQuery,
		quote.ID, quote.CustomerName, quote.CustomerEmail,
		quote.CompanyName, quote.PhoneNumber, quote.Message, quote.Status,
	); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}

	itemQuery := `
		INSERT INTO quote_items (id, quote_id, product_id, product_name, quantity, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, item := range items {
		if _, err := tx.Exec(ctx, itemQuery,
			item.ID, item.QuoteID, item.ProductID, item.ProductName, item.Quantity, item.Notes,
		); err != nil {
			return fmt.Errorf("insert quote item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit quote: %w", err)
	}
	return nil
}

// GetByID retrieves a quote by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`

	quote, err := scanQuote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, apperr.NotFound(quoteNotFoundMessage)
		}
		return Quote{}, fmt.Errorf("get quote: %w", err)
	}
	return quote, nil
}

// GetItems retrieves the line items of a quote in insertion order.
func (r *Repo) GetItems(ctx context.Context, quoteID uuid.UUID) ([]QuoteItem, error) {
	query := `
		SELECT id, quote_id, product_id, product_name, quantity, notes
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()

	items := make([]QuoteItem, 0)
	for rows.Next() {
		var item QuoteItem
		if err := rows.Scan(&item.ID, &item.QuoteID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.Notes); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate quote items: %w", rows.Err())
	}

	return items, nil
}

// List lists quotes newest first, optionally filtered by status.
func (r *Repo) List(ctx context.Context, params ListQuotesParams) ([]Quote, int, error) {
	where := ``
	args := []any{}
	if params.Status != "" {
		where = `WHERE status = $1`
		args = append(args, params.Status)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM quotes ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+quoteColumns+` FROM quotes %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]Quote, 0)
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("iterate quotes: %w", rows.Err())
	}

	return quotes, total, nil
}

// UpdateStatus sets a quote's status and returns the updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Quote, error) {
	query := `
		UPDATE quotes
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + quoteColumns

	quote, err := scanQuote(r.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, apperr.NotFound(quoteNotFoundMessage)
		}
		return Quote{}, fmt.Errorf("update quote status: %w", err)
	}
	return quote, nil
}

// Delete removes a quote; its items go with it via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(quoteNotFoundMessage)
	}
	return nil
}
