package observer

import (
	"context"
	"sync"
	"time"

	"pattern_lab/internal/patterns"
)

type Scenario struct {
	bus *EventBus
}

// NewScenario runs demo/test sequences against the shared bus so the
// websocket stream sees demo traffic too.
func NewScenario(bus *EventBus) *Scenario { return &Scenario{bus: bus} }

func (s *Scenario) Name() string { return "observer" }

// recorder collects events for assertions.
type recorder struct {
	mu     sync.Mutex
	events []Event
	done   chan struct{}
	want   int
}

func newRecorder(want int) *recorder {
	return &recorder{done: make(chan struct{}), want: want}
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	if len(r.events) == r.want {
		close(r.done)
	}
}

func (r *recorder) wait(d time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	accounting := newRecorder(2)
	notify := newRecorder(1)

	bus := NewEventBus()
	bus.Subscribe("orders.placed", accounting.handle)
	bus.Subscribe("orders.filled", accounting.handle)
	bus.Subscribe("orders.filled", notify.handle)

	bus.Publish("orders.placed", map[string]string{"order_id": "ord-demo-1"})
	bus.Publish("orders.filled", map[string]string{"order_id": "ord-demo-1"})

	delivered := accounting.wait(time.Second) && notify.wait(time.Second)

	// Mirror onto the shared bus for live websocket watchers.
	s.bus.Publish("patterns.observer.demo", map[string]any{"delivered": delivered})

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "In-memory pub/sub bus with fire-and-forget handler dispatch",
		Result: map[string]any{
			"accounting_events":   accounting.count(),
			"notification_events": notify.count(),
			"delivered":           delivered,
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}
	bus := NewEventBus()

	rec := newRecorder(1)
	bus.Subscribe("topic.a", rec.handle)
	bus.Publish("topic.a", "payload")
	result.AddCheck("subscriber receives published event", rec.wait(time.Second),
		"received %d", rec.count())

	other := newRecorder(1)
	bus.Subscribe("topic.b", other.handle)
	bus.Publish("topic.a", "payload")
	result.AddCheck("unrelated topics stay silent", !other.wait(50*time.Millisecond),
		"received %d", other.count())

	wild := newRecorder(2)
	bus.Subscribe("*", wild.handle)
	bus.Publish("topic.a", "one")
	bus.Publish("topic.b", "two")
	result.AddCheck("wildcard sees everything", wild.wait(time.Second),
		"received %d", wild.count())

	// A panicking handler must not break delivery to others.
	bus.Subscribe("topic.c", func(Event) { panic("boom") })
	safe := newRecorder(1)
	bus.Subscribe("topic.c", safe.handle)
	bus.Publish("topic.c", "payload")
	result.AddCheck("panicking handler is isolated", safe.wait(time.Second),
		"received %d", safe.count())

	result.Finish()
	return result
}
