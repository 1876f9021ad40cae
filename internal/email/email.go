// Package email delivers back-office notification mail over SMTP.
package email

import "context"

// QuoteNotificationData carries the fields rendered into the quote
// notification email.
type QuoteNotificationData struct {
	QuoteID       string
	CustomerName  string
	CustomerEmail string
	ItemCount     int
}

// ContactNotificationData carries the fields rendered into the contact
// notification email.
type ContactNotificationData struct {
	MessageID string
	Name      string
	Email     string
	Subject   string
}

// Sender delivers admin notification emails.
type Sender interface {
	SendQuoteNotification(ctx context.Context, toEmail string, data QuoteNotificationData) error
	SendContactNotification(ctx context.Context, toEmail string, data ContactNotificationData) error
}

// NoopSender is used when email delivery is disabled by configuration.
type NoopSender struct{}

func (NoopSender) SendQuoteNotification(context.Context, string, QuoteNotificationData) error {
	return nil
}

func (NoopSender) SendContactNotification(context.Context, string, ContactNotificationData) error {
	return nil
}

var _ Sender = NoopSender{}
