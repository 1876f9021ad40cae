package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"tradegate_backend/internal/email"
	"tradegate_backend/internal/events"
	"tradegate_backend/internal/scheduler"
	"tradegate_backend/platform/logger"
)

type fakeSender struct {
	quoteTo   []string
	contactTo []string
}

func (f *fakeSender) SendQuoteNotification(_ context.Context, to string, _ email.QuoteNotificationData) error {
	f.quoteTo = append(f.quoteTo, to)
	return nil
}

func (f *fakeSender) SendContactNotification(_ context.Context, to string, _ email.ContactNotificationData) error {
	f.contactTo = append(f.contactTo, to)
	return nil
}

type fakeEnqueuer struct {
	quotes   []scheduler.QuoteNotificationPayload
	contacts []scheduler.ContactNotificationPayload
}

func (f *fakeEnqueuer) EnqueueQuoteNotification(_ context.Context, p scheduler.QuoteNotificationPayload) error {
	f.quotes = append(f.quotes, p)
	return nil
}

func (f *fakeEnqueuer) EnqueueContactNotification(_ context.Context, p scheduler.ContactNotificationPayload) error {
	f.contacts = append(f.contacts, p)
	return nil
}

type fakeSMTPConfig struct{}

func (fakeSMTPConfig) GetEmailEnabled() bool         { return true }
func (fakeSMTPConfig) GetSMTPHost() string           { return "localhost" }
func (fakeSMTPConfig) GetSMTPPort() int              { return 1025 }
func (fakeSMTPConfig) GetSMTPUsername() string       { return "" }
func (fakeSMTPConfig) GetSMTPPassword() string       { return "" }
func (fakeSMTPConfig) GetEmailFromName() string      { return "TradeGate" }
func (fakeSMTPConfig) GetEmailFromAddress() string   { return "noreply@example.com" }
func (fakeSMTPConfig) GetAdminNotifyAddress() string { return "admin@example.com" }

func TestQuoteSubmittedSentInlineWithoutEnqueuer(t *testing.T) {
	sender := &fakeSender{}
	module := NewModule(fakeSMTPConfig{}, sender, nil, logger.New("development"))

	bus := events.NewInMemoryBus(logger.New("development"))
	module.Subscribe(bus)

	err := bus.PublishSync(context.Background(), events.QuoteSubmitted{
		BaseEvent:     events.NewBaseEvent(),
		QuoteID:       uuid.New(),
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		ItemCount:     2,
	})
	if err != nil {
		t.Fatalf("PublishSync: %v", err)
	}

	if len(sender.quoteTo) != 1 || sender.quoteTo[0] != "admin@example.com" {
		t.Errorf("quote notification recipients = %v", sender.quoteTo)
	}
}

func TestContactMessageEnqueuedWhenWorkerConfigured(t *testing.T) {
	sender := &fakeSender{}
	enqueuer := &fakeEnqueuer{}
	module := NewModule(fakeSMTPConfig{}, sender, enqueuer, logger.New("development"))

	bus := events.NewInMemoryBus(logger.New("development"))
	module.Subscribe(bus)

	messageID := uuid.New()
	err := bus.PublishSync(context.Background(), events.ContactMessageReceived{
		BaseEvent: events.NewBaseEvent(),
		MessageID: messageID,
		Name:      "Bram",
		Email:     "bram@example.com",
		Subject:   "Bulk order",
	})
	if err != nil {
		t.Fatalf("PublishSync: %v", err)
	}

	if len(enqueuer.contacts) != 1 || enqueuer.contacts[0].MessageID != messageID.String() {
		t.Errorf("enqueued contacts = %v", enqueuer.contacts)
	}
	if len(sender.contactTo) != 0 {
		t.Error("email sent inline although an enqueuer is configured")
	}
}
