package transport

import (
	"time"

	"github.com/google/uuid"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Featured    bool       `json:"featured"`
	Published   bool       `json:"published"`
}

// UpdateProductRequest is the request body for a partial product update.
// Only the fields present are applied; the slug is regenerated only when
// the name changes.
type UpdateProductRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Featured    *bool      `json:"featured"`
	Published   *bool      `json:"published"`
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
}

// UpdateCategoryRequest is the request body for a partial category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
}

// ListProductsQuery captures the query parameters for product listing.
type ListProductsQuery struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Featured   bool   `form:"featured"`
	SortBy     string `form:"sortBy" validate:"omitempty,oneof=name created_at updated_at"`
	SortOrder  string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
	Unfiltered bool   `form:"-"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	Featured    bool       `json:"featured"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CategoryDetailResponse is a category together with its published products,
// returned by the public category page.
type CategoryDetailResponse struct {
	CategoryResponse
	Products []ProductResponse `json:"products"`
}

// ProductListResponse is a paginated set of products.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// CategoryResponse is the API representation of a category.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
