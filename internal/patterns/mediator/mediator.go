// Package mediator demonstrates request routing through an explicit
// tag→handler registry. Handlers are resolved by static tag, not by
// runtime type introspection.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns/repository"
)

// Tag names one request type in the registry.
type Tag string

const (
	TagPlaceOrder  Tag = "orders.place"
	TagGetOrder    Tag = "orders.get"
	TagCancelOrder Tag = "orders.cancel"
)

// HandlerFunc processes one request.
type HandlerFunc func(ctx context.Context, req any) (any, error)

// ErrNoHandler indicates an unregistered tag.
var ErrNoHandler = errors.New("no handler registered")

// Mediator routes requests to registered handlers.
type Mediator struct {
	mu       sync.RWMutex
	handlers map[Tag]HandlerFunc
}

// New creates an empty mediator.
func New() *Mediator {
	return &Mediator{handlers: make(map[Tag]HandlerFunc)}
}

// Register binds a handler to a tag, replacing any prior binding.
func (m *Mediator) Register(tag Tag, h HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[tag] = h
}

// Send routes the request to the handler bound to tag.
func (m *Mediator) Send(ctx context.Context, tag Tag, req any) (any, error) {
	m.mu.RLock()
	h, ok := m.handlers[tag]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w for tag %q", ErrNoHandler, tag)
	}
	return h(ctx, req)
}

// Tags returns the registered tags, sorted.
func (m *Mediator) Tags() []Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tags := make([]Tag, 0, len(m.handlers))
	for t := range m.handlers {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Request/response shapes for the stock order handlers.

type PlaceOrderRequest struct {
	Order domain.Order
}

type GetOrderRequest struct {
	OrderID string
}

type CancelOrderRequest struct {
	OrderID string
	// ExpectedVersion, when non-zero, must match the stored order's
	// version for the cancel to apply.
	ExpectedVersion int64
}

// RegisterOrderHandlers binds the stock handlers over the given store.
func RegisterOrderHandlers(m *Mediator, store *repository.Repository[repository.StoredOrder]) {
	m.Register(TagPlaceOrder, func(ctx context.Context, req any) (any, error) {
		r, ok := req.(PlaceOrderRequest)
		if !ok {
			return nil, fmt.Errorf("tag %s expects PlaceOrderRequest, got %T", TagPlaceOrder, req)
		}
		placed := r.Order.WithStatus(domain.StatusPlaced)
		store.Add(repository.StoredOrder{Order: placed})
		return placed, nil
	})

	m.Register(TagGetOrder, func(ctx context.Context, req any) (any, error) {
		r, ok := req.(GetOrderRequest)
		if !ok {
			return nil, fmt.Errorf("tag %s expects GetOrderRequest, got %T", TagGetOrder, req)
		}
		stored, err := store.GetByID(r.OrderID)
		if err != nil {
			return nil, err
		}
		return stored.Order, nil
	})

	m.Register(TagCancelOrder, func(ctx context.Context, req any) (any, error) {
		r, ok := req.(CancelOrderRequest)
		if !ok {
			return nil, fmt.Errorf("tag %s expects CancelOrderRequest, got %T", TagCancelOrder, req)
		}
		stored, err := store.GetByID(r.OrderID)
		if err != nil {
			return nil, err
		}
		if r.ExpectedVersion != 0 && stored.Version != r.ExpectedVersion {
			return nil, fmt.Errorf("order %s at version %d, expected %d: %w",
				r.OrderID, stored.Version, r.ExpectedVersion, domain.ErrVersionConflict)
		}
		if !stored.CanTransition(domain.StatusCancelled) {
			return nil, fmt.Errorf("order %s in %s: %w", r.OrderID, stored.Status, domain.ErrInvalidTransition)
		}
		cancelled := stored.Order.WithStatus(domain.StatusCancelled)
		if err := store.Update(repository.StoredOrder{Order: cancelled}); err != nil {
			return nil, err
		}
		return cancelled, nil
	})
}
