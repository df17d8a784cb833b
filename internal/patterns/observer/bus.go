// Package observer demonstrates an in-memory publish/subscribe bus with
// fire-and-forget handler dispatch. The websocket event stream and the
// facade both publish through it.
package observer

import (
	"log/slog"
	"sync"
	"time"
)

// Event is one published notification.
type Event struct {
	Topic       string    `json:"topic"`
	Payload     any       `json:"payload"`
	PublishedAt time.Time `json:"published_at"`
}

// Handler consumes one event. Handlers must tolerate concurrent calls.
type Handler func(Event)

// EventBus routes events to topic subscribers. Dispatch is fire-and-
// forget: a slow or panicking handler never blocks or fails the
// publisher.
type EventBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[string]map[int]Handler)}
}

// Subscribe registers a handler for a topic. "*" receives every event.
// The returned func removes the handler; calling it more than once is
// harmless.
func (b *EventBus) Subscribe(topic string, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish delivers the event to all topic and wildcard subscribers, each
// on its own goroutine.
func (b *EventBus) Publish(topic string, payload any) {
	ev := Event{Topic: topic, Payload: payload, PublishedAt: time.Now()}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic])+len(b.subs["*"]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	for _, h := range b.subs["*"] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("event handler panicked",
						slog.String("topic", topic),
						slog.Any("panic", r))
				}
			}()
			h(ev)
		}(h)
	}
}

// SubscriberCount returns the number of handlers on a topic.
func (b *EventBus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
