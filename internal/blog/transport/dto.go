package transport

import (
	"time"

	"github.com/google/uuid"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// CreatePostRequest is the request body for creating a blog post.
type CreatePostRequest struct {
	Title     string  `json:"title" validate:"required,min=1,max=255"`
	Excerpt   *string `json:"excerpt" validate:"omitempty,max=1000"`
	Body      string  `json:"body" validate:"required"`
	Published bool    `json:"published"`
}

// UpdatePostRequest is the request body for a partial post update. The slug
// is regenerated only when the title changes.
type UpdatePostRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	Excerpt   *string `json:"excerpt" validate:"omitempty,max=1000"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

// ListPostsQuery captures the query parameters for post listing.
type ListPostsQuery struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// PostResponse is the API representation of a blog post.
type PostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PostListResponse is a paginated set of posts.
type PostListResponse struct {
	Items    []PostResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}
