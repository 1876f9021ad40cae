// Package service implements the contact messaging business logic.
package service

import (
	"context"

	"github.com/google/uuid"

	"tradegate_backend/internal/contact/repository"
	"tradegate_backend/internal/contact/transport"
	"tradegate_backend/internal/events"
)

const defaultPageSize = 20

// Service provides business logic for contact messages.
type Service struct {
	repo repository.Repository
	bus  events.Bus
}

// New creates a new contact service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// SetEventBus injects the event bus (optional; nil means no notifications).
func (s *Service) SetEventBus(bus events.Bus) {
	s.bus = bus
}

// Submit persists a contact message and notifies subscribers.
func (s *Service) Submit(ctx context.Context, req transport.SubmitMessageRequest) (transport.MessageResponse, error) {
	message := repository.Message{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
		Read:    false,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return transport.MessageResponse{}, err
	}

	if s.bus != nil {
		subject := ""
		if message.Subject != nil {
			subject = *message.Subject
		}
		s.bus.Publish(ctx, events.ContactMessageReceived{
			BaseEvent: events.NewBaseEvent(),
			MessageID: message.ID,
			Name:      message.Name,
			Email:     message.Email,
			Subject:   subject,
		})
	}

	return toMessageResponse(message), nil
}

// Get retrieves a message by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.MessageResponse, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.MessageResponse{}, err
	}
	return toMessageResponse(message), nil
}

// List lists messages for the admin inbox.
func (s *Service) List(ctx context.Context, query transport.ListMessagesQuery) (transport.MessageListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	messages, total, err := s.repo.List(ctx, repository.ListMessagesParams{
		UnreadOnly: query.Unread,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return transport.MessageListResponse{}, err
	}

	items := make([]transport.MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = toMessageResponse(m)
	}
	return transport.MessageListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// MarkRead marks a message as handled.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (transport.MessageResponse, error) {
	message, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return transport.MessageResponse{}, err
	}
	return toMessageResponse(message), nil
}

// Delete removes a message.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func toMessageResponse(m repository.Message) transport.MessageResponse {
	return transport.MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
