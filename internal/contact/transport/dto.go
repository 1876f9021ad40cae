package transport

import (
	"time"

	"github.com/google/uuid"
)

// SubmitMessageRequest is the request body for the public contact form.
type SubmitMessageRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=255"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Subject *string `json:"subject" validate:"omitempty,max=255"`
	Message string  `json:"message" validate:"required,max=10000"`
}

// ListMessagesQuery captures the query parameters for the admin inbox.
type ListMessagesQuery struct {
	Unread   bool `form:"unread"`
	Page     int  `form:"page" validate:"omitempty,min=1"`
	PageSize int  `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// MessageResponse is the API representation of a contact message.
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageListResponse is a paginated set of messages.
type MessageListResponse struct {
	Items    []MessageResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}
