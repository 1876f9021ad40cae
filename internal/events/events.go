// Package events defines the domain events exchanged between modules and
// re-exports the platform event bus for convenience.
package events

import (
	platformevents "tradegate_backend/platform/events"
	"tradegate_backend/platform/logger"

	"github.com/google/uuid"
)

// Bus is a type alias to the platform Bus interface.
type Bus = platformevents.Bus

// InMemoryBus is a type alias to the platform InMemoryBus.
type InMemoryBus = platformevents.InMemoryBus

// Event is a type alias to the platform Event interface.
type Event = platformevents.Event

// Handler is a type alias to the platform Handler interface.
type Handler = platformevents.Handler

// HandlerFunc is a type alias to the platform HandlerFunc adapter.
type HandlerFunc = platformevents.HandlerFunc

// BaseEvent is a type alias to the platform BaseEvent.
type BaseEvent = platformevents.BaseEvent

// NewBaseEvent creates a new base event with the current timestamp.
func NewBaseEvent() BaseEvent {
	return platformevents.NewBaseEvent()
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}

// QuoteSubmitted fires after a quote and its items are committed.
type QuoteSubmitted struct {
	BaseEvent
	QuoteID       uuid.UUID
	CustomerName  string
	CustomerEmail string
	ItemCount     int
}

// EventName returns the event identifier.
func (QuoteSubmitted) EventName() string { return "quotes.submitted" }

// ContactMessageReceived fires after a contact message is persisted.
type ContactMessageReceived struct {
	BaseEvent
	MessageID uuid.UUID
	Name      string
	Email     string
	Subject   string
}

// EventName returns the event identifier.
func (ContactMessageReceived) EventName() string { return "contact.received" }
