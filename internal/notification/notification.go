// Package notification subscribes to domain events and turns them into
// admin emails. Domain modules publish events and stay unaware of email
// providers and templates; this module inverts that dependency.
package notification

import (
	"context"
	"fmt"

	"tradegate_backend/internal/email"
	"tradegate_backend/internal/events"
	"tradegate_backend/internal/scheduler"
	"tradegate_backend/platform/config"
	"tradegate_backend/platform/logger"
)

// Enqueuer queues notification delivery for the background worker.
// Implemented by the scheduler client; nil means deliver inline.
type Enqueuer interface {
	EnqueueQuoteNotification(ctx context.Context, payload scheduler.QuoteNotificationPayload) error
	EnqueueContactNotification(ctx context.Context, payload scheduler.ContactNotificationPayload) error
}

// Module wires the event subscriptions for admin notifications.
type Module struct {
	sender       email.Sender
	enqueuer     Enqueuer
	adminAddress string
	log          *logger.Logger
}

// NewModule creates the notification module. enqueuer may be nil, in which
// case emails go out inline on the event handler goroutine.
func NewModule(cfg config.SMTPConfig, sender email.Sender, enqueuer Enqueuer, log *logger.Logger) *Module {
	return &Module{
		sender:       sender,
		enqueuer:     enqueuer,
		adminAddress: cfg.GetAdminNotifyAddress(),
		log:          log,
	}
}

// Subscribe registers the module's handlers on the event bus.
func (m *Module) Subscribe(bus events.Bus) {
	bus.Subscribe(events.QuoteSubmitted{}.EventName(), events.HandlerFunc(m.onQuoteSubmitted))
	bus.Subscribe(events.ContactMessageReceived{}.EventName(), events.HandlerFunc(m.onContactMessage))
}

func (m *Module) onQuoteSubmitted(ctx context.Context, event events.Event) error {
	submitted, ok := event.(events.QuoteSubmitted)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	if m.enqueuer != nil {
		return m.enqueuer.EnqueueQuoteNotification(ctx, scheduler.QuoteNotificationPayload{
			QuoteID:       submitted.QuoteID.String(),
			CustomerName:  submitted.CustomerName,
			CustomerEmail: submitted.CustomerEmail,
			ItemCount:     submitted.ItemCount,
		})
	}

	if m.adminAddress == "" {
		return nil
	}
	return m.sender.SendQuoteNotification(ctx, m.adminAddress, email.QuoteNotificationData{
		QuoteID:       submitted.QuoteID.String(),
		CustomerName:  submitted.CustomerName,
		CustomerEmail: submitted.CustomerEmail,
		ItemCount:     submitted.ItemCount,
	})
}

func (m *Module) onContactMessage(ctx context.Context, event events.Event) error {
	received, ok := event.(events.ContactMessageReceived)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	if m.enqueuer != nil {
		return m.enqueuer.EnqueueContactNotification(ctx, scheduler.ContactNotificationPayload{
			MessageID: received.MessageID.String(),
			Name:      received.Name,
			Email:     received.Email,
			Subject:   received.Subject,
		})
	}

	if m.adminAddress == "" {
		return nil
	}
	return m.sender.SendContactNotification(ctx, m.adminAddress, email.ContactNotificationData{
		MessageID: received.MessageID.String(),
		Name:      received.Name,
		Email:     received.Email,
		Subject:   received.Subject,
	})
}
