package transport

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus defines the lifecycle state of a quote request.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusProcessed QuoteStatus = "processed"
	QuoteStatusCompleted QuoteStatus = "completed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// QuoteItemRequest is the input for a single requested product line.
type QuoteItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Notes     *string   `json:"notes" validate:"omitempty,max=2000"`
}

// SubmitQuoteRequest is the request body for the public quote submission.
type SubmitQuoteRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required,min=2,max=255"`
	CustomerEmail string             `json:"customer_email" validate:"required,email,max=255"`
	CompanyName   *string            `json:"company_name" validate:"omitempty,max=255"`
	PhoneNumber   *string            `json:"phone_number" validate:"omitempty,max=50"`
	Message       *string            `json:"message" validate:"omitempty,max=10000"`
	Items         []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateQuoteStatusRequest is the request body for a status change.
type UpdateQuoteStatusRequest struct {
	Status QuoteStatus `json:"status" validate:"required,oneof=pending processed completed cancelled"`
}

// ListQuotesQuery captures the query parameters for the admin quote list.
type ListQuotesQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=pending processed completed cancelled"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// SubmitQuoteResponse acknowledges a public submission.
type SubmitQuoteResponse struct {
	Message string    `json:"message"`
	QuoteID uuid.UUID `json:"quoteId"`
}

// QuoteItemResponse is the API representation of a quote line item.
type QuoteItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   *uuid.UUID `json:"productId,omitempty"`
	ProductName string     `json:"productName"`
	Quantity    int        `json:"quantity"`
	Notes       *string    `json:"notes,omitempty"`
}

// QuoteResponse is the API representation of a quote request.
type QuoteResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	CompanyName   *string             `json:"companyName,omitempty"`
	PhoneNumber   *string             `json:"phoneNumber,omitempty"`
	Message       *string             `json:"message,omitempty"`
	Status        QuoteStatus         `json:"status"`
	Items         []QuoteItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// QuoteListResponse is a paginated set of quotes.
type QuoteListResponse struct {
	Items    []QuoteResponse `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}
