// Package state demonstrates the order lifecycle as a state machine:
// each status is a type that decides which transitions it allows.
package state

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
)

// OrderState decides the legal transitions for one lifecycle status.
// Illegal moves return domain.ErrInvalidTransition wrapped with context.
type OrderState interface {
	Status() domain.OrderStatus
	Place(o *LifecycleOrder) (OrderState, error)
	Fill(o *LifecycleOrder, qty decimal.Decimal) (OrderState, error)
	Cancel(o *LifecycleOrder) (OrderState, error)
	Reject(o *LifecycleOrder, reason string) (OrderState, error)
}

// LifecycleOrder drives an order through its states.
type LifecycleOrder struct {
	Order  domain.Order
	Reason string

	state OrderState
}

// NewLifecycleOrder starts the machine in Pending.
func NewLifecycleOrder(order domain.Order) *LifecycleOrder {
	order.Status = domain.StatusPending
	return &LifecycleOrder{Order: order, state: pendingState{}}
}

// Status returns the current lifecycle status.
func (l *LifecycleOrder) Status() domain.OrderStatus { return l.state.Status() }

// Remaining returns the unfilled quantity.
func (l *LifecycleOrder) Remaining() decimal.Decimal {
	return l.Order.Quantity.Sub(l.Order.FilledQty)
}

// Open reports whether the order can still move.
func (l *LifecycleOrder) Open() bool { return l.Order.IsOpen() }

// Terminal reports whether the lifecycle has ended.
func (l *LifecycleOrder) Terminal() bool { return l.Order.IsTerminal() }

func (l *LifecycleOrder) transition(next OrderState, err error) error {
	if err != nil {
		return err
	}
	l.state = next
	l.Order = l.Order.WithStatus(next.Status())
	return nil
}

// Place moves Pending → Placed.
func (l *LifecycleOrder) Place() error {
	next, err := l.state.Place(l)
	return l.transition(next, err)
}

// Fill applies a fill; a full fill ends in Filled, a partial one in
// PartiallyFilled.
func (l *LifecycleOrder) Fill(qty decimal.Decimal) error {
	next, err := l.state.Fill(l, qty)
	return l.transition(next, err)
}

// Cancel aborts an open order.
func (l *LifecycleOrder) Cancel() error {
	next, err := l.state.Cancel(l)
	return l.transition(next, err)
}

// Reject refuses a pending or placed order.
func (l *LifecycleOrder) Reject(reason string) error {
	next, err := l.state.Reject(l, reason)
	return l.transition(next, err)
}

func illegal(from domain.OrderStatus, op string) error {
	return fmt.Errorf("%s not allowed in %s: %w", op, from, domain.ErrInvalidTransition)
}

// applyFill validates and books a fill, returning the resulting state.
func applyFill(o *LifecycleOrder, qty decimal.Decimal) (OrderState, error) {
	if qty.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("fill quantity must be positive, got %s", qty)
	}
	if qty.GreaterThan(o.Remaining()) {
		return nil, fmt.Errorf("fill %s exceeds remaining %s", qty, o.Remaining())
	}

	o.Order.FilledQty = o.Order.FilledQty.Add(qty)
	if o.Order.FilledQty.Equal(o.Order.Quantity) {
		return filledState{}, nil
	}
	return partiallyFilledState{}, nil
}

type pendingState struct{}

func (pendingState) Status() domain.OrderStatus { return domain.StatusPending }

func (pendingState) Place(*LifecycleOrder) (OrderState, error) {
	return placedState{}, nil
}

func (pendingState) Fill(o *LifecycleOrder, _ decimal.Decimal) (OrderState, error) {
	return nil, illegal(domain.StatusPending, "fill")
}

func (pendingState) Cancel(*LifecycleOrder) (OrderState, error) {
	return cancelledState{}, nil
}

func (pendingState) Reject(o *LifecycleOrder, reason string) (OrderState, error) {
	o.Reason = reason
	return rejectedState{}, nil
}

type placedState struct{}

func (placedState) Status() domain.OrderStatus { return domain.StatusPlaced }

func (placedState) Place(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusPlaced, "place")
}

func (placedState) Fill(o *LifecycleOrder, qty decimal.Decimal) (OrderState, error) {
	return applyFill(o, qty)
}

func (placedState) Cancel(*LifecycleOrder) (OrderState, error) {
	return cancelledState{}, nil
}

func (placedState) Reject(o *LifecycleOrder, reason string) (OrderState, error) {
	o.Reason = reason
	return rejectedState{}, nil
}

type partiallyFilledState struct{}

func (partiallyFilledState) Status() domain.OrderStatus { return domain.StatusPartiallyFilled }

func (partiallyFilledState) Place(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusPartiallyFilled, "place")
}

func (partiallyFilledState) Fill(o *LifecycleOrder, qty decimal.Decimal) (OrderState, error) {
	return applyFill(o, qty)
}

func (partiallyFilledState) Cancel(*LifecycleOrder) (OrderState, error) {
	return cancelledState{}, nil
}

func (partiallyFilledState) Reject(*LifecycleOrder, string) (OrderState, error) {
	return nil, illegal(domain.StatusPartiallyFilled, "reject")
}

type filledState struct{}

func (filledState) Status() domain.OrderStatus { return domain.StatusFilled }

func (filledState) Place(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusFilled, "place")
}

func (filledState) Fill(*LifecycleOrder, decimal.Decimal) (OrderState, error) {
	return nil, illegal(domain.StatusFilled, "fill")
}

func (filledState) Cancel(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusFilled, "cancel")
}

func (filledState) Reject(*LifecycleOrder, string) (OrderState, error) {
	return nil, illegal(domain.StatusFilled, "reject")
}

type cancelledState struct{}

func (cancelledState) Status() domain.OrderStatus { return domain.StatusCancelled }

func (cancelledState) Place(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusCancelled, "place")
}

func (cancelledState) Fill(*LifecycleOrder, decimal.Decimal) (OrderState, error) {
	return nil, illegal(domain.StatusCancelled, "fill")
}

func (cancelledState) Cancel(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusCancelled, "cancel")
}

func (cancelledState) Reject(*LifecycleOrder, string) (OrderState, error) {
	return nil, illegal(domain.StatusCancelled, "reject")
}

type rejectedState struct{}

func (rejectedState) Status() domain.OrderStatus { return domain.StatusRejected }

func (rejectedState) Place(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusRejected, "place")
}

func (rejectedState) Fill(*LifecycleOrder, decimal.Decimal) (OrderState, error) {
	return nil, illegal(domain.StatusRejected, "fill")
}

func (rejectedState) Cancel(*LifecycleOrder) (OrderState, error) {
	return nil, illegal(domain.StatusRejected, "cancel")
}

func (rejectedState) Reject(*LifecycleOrder, string) (OrderState, error) {
	return nil, illegal(domain.StatusRejected, "reject")
}
