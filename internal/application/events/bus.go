package events

import (
	"context"
	"log"
	"sync"
)

// Handler reacts to one event. Handler failures are the handler's problem:
// they are logged and never reach the publisher.
type Handler func(ctx context.Context, event Event) error

// Bus is a best-effort, fire-and-forget fan-out of domain events.
// Subscriptions are registered explicitly at process start; the bus performs
// no work in its constructor. Publication happens only after the state it
// reports has committed, so a failing listener can never roll anything back.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Kind][]Handler),
	}
}

// Subscribe registers a handler for an event kind
func (b *Bus) Subscribe(kind Kind, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
}

// Publish delivers the event to every subscribed handler and returns after
// all of them settle. Per-handler errors and panics are logged and swallowed.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.EventKind()]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.invoke(ctx, event, h)
	}
}

func (b *Bus) invoke(ctx context.Context, event Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event bus: handler for %s panicked: %v", event.EventKind(), r)
		}
	}()

	if err := h(ctx, event); err != nil {
		log.Printf("event bus: handler for %s failed: %v", event.EventKind(), err)
	}
}

// SubscriberCount returns the number of handlers for a kind, for tests and
// monitoring.
func (b *Bus) SubscriberCount(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[kind])
}
