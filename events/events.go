package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeLedgerChange  EventType = "ledger_change"
	EventTypeMemberJoined  EventType = "member_joined"
	EventTypeSyncCompleted EventType = "sync_completed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// LedgerChangeEvent fires whenever a member's done or owed ledger moved
type LedgerChangeEvent struct {
	DiscordID int64
	Net       int64
}

func (e LedgerChangeEvent) Type() EventType {
	return EventTypeLedgerChange
}

// MemberJoinedEvent fires when a new member joins the community
type MemberJoinedEvent struct {
	DiscordID int64
}

func (e MemberJoinedEvent) Type() EventType {
	return EventTypeMemberJoined
}

// SyncCompletedEvent fires after a reconciliation run, rate limited or not
type SyncCompletedEvent struct {
	DiscordID   int64
	TotalDeaths int
	RateLimited bool
}

func (e SyncCompletedEvent) Type() EventType {
	return EventTypeSyncCompleted
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously so a slow subscriber cannot block the emitting command.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
