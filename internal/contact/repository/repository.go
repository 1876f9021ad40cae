// Package repository provides pgx-backed persistence for contact messages.
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

const messageNotFoundMessage = "message not found"

// Message is the database model for a contact form message.
type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   *string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// ListMessagesParams contains filters and pagination for listing messages.
type ListMessagesParams struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Repository provides persistence for contact messages.
type Repository interface {
	Create(ctx context.Context, message Message) error
	GetByID(ctx context.Context, id uuid.UUID) (Message, error)
	List(ctx context.Context, params ListMessagesParams) ([]Message, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) (Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repo is the pgx implementation of Repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

const messageColumns = `id, name, email, subject, body, read, created_at`

func scanMessage(row pgx.Row) (Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Read, &m.CreatedAt)
	return m, err
}

// Create inserts a contact message.
func (r *Repo) Create(ctx context.Context, message Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, body, read)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.pool.Exec(ctx, query,
		message.ID, message.Name, message.Email, message.Subject, message.Body, message.Read,
	); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE id = $1`

	message, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Message{}, apperr.NotFound(messageNotFoundMessage)
		}
		return Message{}, fmt.Errorf("get contact message: %w", err)
	}
	return message, nil
}

// List lists messages newest first, optionally unread only.
func (r *Repo) List(ctx context.Context, params ListMessagesParams) ([]Message, int, error) {
	where := ``
	if params.UnreadOnly {
		where = `WHERE read = false`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages `+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+messageColumns+` FROM contact_messages %s ORDER BY created_at DESC LIMIT $1 OFFSET $2`, where)
	rows, err := r.pool.Query(ctx, query, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]Message, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, message)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("iterate contact messages: %w", rows.Err())
	}

	return messages, total, nil
}

// MarkRead marks a message as read and returns the updated row.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) (Message, error) {
	query := `
		UPDATE contact_messages
		SET read = true
		WHERE id = $1
		RETURNING ` + messageColumns

	message, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Message{}, apperr.NotFound(messageNotFoundMessage)
		}
		return Message{}, fmt.Errorf("mark contact message read: %w", err)
	}
	return message, nil
}

// Delete removes a message.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(messageNotFoundMessage)
	}
	return nil
}
