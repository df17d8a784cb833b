package mediator

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
	"pattern_lab/internal/patterns/repository"
	"pattern_lab/pkg/idgen"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "mediator" }

func mediatorOrder() domain.Order {
	now := time.Now()
	return domain.Order{
		ID:        idgen.NewOrderID(),
		AccountID: "acc-demo",
		Symbol:    "ETHUSD",
		Side:      domain.SideSell,
		Quantity:  decimal.NewFromInt(2),
		Price:     decimal.NewFromInt(3_400),
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

func newWired() (*Mediator, *repository.Repository[repository.StoredOrder]) {
	m := New()
	store := repository.New[repository.StoredOrder]()
	RegisterOrderHandlers(m, store)
	return m, store
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	m, _ := newWired()
	order := mediatorOrder()

	placed, _ := m.Send(ctx, TagPlaceOrder, PlaceOrderRequest{Order: order})
	fetched, _ := m.Send(ctx, TagGetOrder, GetOrderRequest{OrderID: order.ID})
	cancelled, _ := m.Send(ctx, TagCancelOrder, CancelOrderRequest{OrderID: order.ID})
	_, unknownErr := m.Send(ctx, Tag("orders.unknown"), nil)

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Explicit tag→handler registry instead of reflection-based dispatch",
		Result: map[string]any{
			"placed":        placed,
			"fetched":       fetched,
			"cancelled":     cancelled,
			"unknown_error": unknownErr.Error(),
		},
		Metadata: map[string]any{"registered_tags": m.Tags()},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}
	m, store := newWired()
	order := mediatorOrder()

	resp, err := m.Send(ctx, TagPlaceOrder, PlaceOrderRequest{Order: order})
	placed, isOrder := resp.(domain.Order)
	result.AddCheck("place handler routes and places",
		err == nil && isOrder && placed.Status == domain.StatusPlaced,
		"err=%v status=%v", err, placed.Status)

	resp, err = m.Send(ctx, TagGetOrder, GetOrderRequest{OrderID: order.ID})
	fetched, _ := resp.(domain.Order)
	result.AddCheck("get handler fetches stored order",
		err == nil && fetched.ID == order.ID,
		"err=%v", err)

	_, err = m.Send(ctx, TagGetOrder, GetOrderRequest{OrderID: "missing"})
	result.AddCheck("missing order surfaces ErrNotFound",
		errors.Is(err, domain.ErrNotFound), "err=%v", err)

	_, err = m.Send(ctx, Tag("orders.unknown"), nil)
	result.AddCheck("unknown tag surfaces ErrNoHandler",
		errors.Is(err, ErrNoHandler), "err=%v", err)

	_, err = m.Send(ctx, TagPlaceOrder, GetOrderRequest{})
	result.AddCheck("wrong request shape rejected", err != nil, "err=%v", err)

	_, err = m.Send(ctx, TagCancelOrder, CancelOrderRequest{OrderID: order.ID})
	stored, _ := store.GetByID(order.ID)
	result.AddCheck("cancel handler transitions stored order",
		err == nil && stored.Status == domain.StatusCancelled,
		"err=%v status=%s", err, stored.Status)

	result.Finish()
	return result
}
