package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending         OrderStatus = "PENDING"
	StatusPlaced          OrderStatus = "PLACED"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
	StatusCancelled       OrderStatus = "CANCELLED"
	StatusRejected        OrderStatus = "REJECTED"
)

// Order represents a trading order.
// Orders are value types: every transition produces a new copy with
// Version incremented. Monetary values use decimal to avoid float drift.
type Order struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Symbol    string          `json:"symbol"`
	Side      Side            `json:"side"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	FilledQty decimal.Decimal `json:"filled_qty"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int64           `json:"version"`
}

// Notional returns price * quantity.
func (o Order) Notional() decimal.Decimal {
	return o.Price.Mul(o.Quantity)
}

// IsOpen checks if the order is still active.
func (o Order) IsOpen() bool {
	return o.Status == StatusPending || o.Status == StatusPlaced || o.Status == StatusPartiallyFilled
}

// IsTerminal reports whether no further transition is allowed.
func (o Order) IsTerminal() bool {
	return o.Status == StatusFilled || o.Status == StatusCancelled || o.Status == StatusRejected
}

// WithStatus returns a copy of the order in the given status, with
// UpdatedAt and Version bumped.
func (o Order) WithStatus(s OrderStatus) Order {
	next := o
	next.Status = s
	next.UpdatedAt = time.Now()
	next.Version++
	return next
}

// legal status transitions
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:         {StatusPlaced, StatusCancelled, StatusRejected},
	StatusPlaced:          {StatusPartiallyFilled, StatusFilled, StatusCancelled, StatusRejected},
	StatusPartiallyFilled: {StatusPartiallyFilled, StatusFilled, StatusCancelled},
}

// CanTransition reports whether moving from the current status to next is legal.
func (o Order) CanTransition(next OrderStatus) bool {
	for _, s := range transitions[o.Status] {
		if s == next {
			return true
		}
	}
	return false
}
