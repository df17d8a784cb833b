package observer

import (
	"sync"
	"testing"
	"time"
)

func collect(t *testing.T, ch <-chan Event, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case ev := <-ch:
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	bus := NewEventBus()
	got := make(chan Event, 1)
	bus.Subscribe("orders.placed", func(ev Event) { got <- ev })

	bus.Publish("orders.placed", "payload")

	ev, ok := collect(t, got, time.Second)
	if !ok {
		t.Fatal("subscriber never received event")
	}
	if ev.Topic != "orders.placed" || ev.Payload != "payload" {
		t.Errorf("event = %+v", ev)
	}
	if ev.PublishedAt.IsZero() {
		t.Error("event missing timestamp")
	}
}

func TestPublishSkipsOtherTopics(t *testing.T) {
	bus := NewEventBus()
	got := make(chan Event, 1)
	bus.Subscribe("orders.filled", func(ev Event) { got <- ev })

	bus.Publish("orders.placed", "payload")

	if _, ok := collect(t, got, 50*time.Millisecond); ok {
		t.Error("subscriber received event from unrelated topic")
	}
}

func TestWildcardReceivesAll(t *testing.T) {
	bus := NewEventBus()
	var mu sync.Mutex
	var topics []string
	done := make(chan struct{})

	bus.Subscribe("*", func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		topics = append(topics, ev.Topic)
		if len(topics) == 2 {
			close(done)
		}
	})

	bus.Publish("a", 1)
	bus.Publish("b", 2)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("wildcard got %d events, want 2", len(topics))
	}
}

func TestPanickingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewEventBus()
	bus.Subscribe("t", func(Event) { panic("boom") })

	got := make(chan Event, 1)
	bus.Subscribe("t", func(ev Event) { got <- ev })

	bus.Publish("t", "payload")

	if _, ok := collect(t, got, time.Second); !ok {
		t.Fatal("co-subscriber starved by panicking handler")
	}
}

func TestSubscriberCount(t *testing.T) {
	bus := NewEventBus()
	if bus.SubscriberCount("x") != 0 {
		t.Error("fresh bus has subscribers")
	}
	bus.Subscribe("x", func(Event) {})
	bus.Subscribe("x", func(Event) {})
	if got := bus.SubscriberCount("x"); got != 2 {
		t.Errorf("SubscriberCount = %d, want 2", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewEventBus()
	got := make(chan Event, 1)
	unsubscribe := bus.Subscribe("x", func(ev Event) { got <- ev })
	keep := make(chan Event, 1)
	bus.Subscribe("x", func(ev Event) { keep <- ev })

	unsubscribe()
	if count := bus.SubscriberCount("x"); count != 1 {
		t.Errorf("SubscriberCount after unsubscribe = %d, want 1", count)
	}

	bus.Publish("x", "payload")

	if _, ok := collect(t, keep, time.Second); !ok {
		t.Fatal("remaining subscriber never received event")
	}
	if _, ok := collect(t, got, 50*time.Millisecond); ok {
		t.Error("unsubscribed handler still received event")
	}

	// A second call must be a no-op, not a removal of someone else.
	unsubscribe()
	if count := bus.SubscriberCount("x"); count != 1 {
		t.Errorf("SubscriberCount after double unsubscribe = %d, want 1", count)
	}
}
