package gateway

import (
	"log/slog"
	"sync"
	"time"
)

// EventPublisher is the outbound boundary to a message broker.
// The fake keeps published events in memory for inspection.
type EventPublisher interface {
	Publish(topic string, payload any) error
}

// PublishedEvent is one record captured by the fake publisher.
type PublishedEvent struct {
	Topic       string    `json:"topic"`
	Payload     any       `json:"payload"`
	PublishedAt time.Time `json:"published_at"`
}

// FakePublisher records events instead of sending them anywhere.
type FakePublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

// NewFakePublisher creates an empty in-memory publisher.
func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

// Publish appends the event to the in-memory log.
func (p *FakePublisher) Publish(topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, PublishedEvent{
		Topic:       topic,
		Payload:     payload,
		PublishedAt: time.Now(),
	})

	slog.Debug("fake publisher recorded event", slog.String("topic", topic))
	return nil
}

// Events returns a copy of everything published so far.
func (p *FakePublisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PublishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Count returns the number of published events.
func (p *FakePublisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
