package facade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
	"pattern_lab/internal/patterns/observer"
	"pattern_lab/internal/patterns/repository"
	"pattern_lab/pkg/idgen"
)

type Scenario struct {
	bus *observer.EventBus
}

func NewScenario(bus *observer.EventBus) *Scenario { return &Scenario{bus: bus} }

func (s *Scenario) Name() string { return "facade" }

func facadeOrder(symbol string, qty, price int64) domain.Order {
	now := time.Now()
	return domain.Order{
		ID:        idgen.NewOrderID(),
		AccountID: "acc-demo",
		Symbol:    symbol,
		Side:      domain.SideBuy,
		Quantity:  decimal.NewFromInt(qty),
		Price:     decimal.NewFromInt(price),
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	accounts := repository.New[repository.StoredAccount]()
	accounts.Add(repository.StoredAccount{Account: domain.Account{
		ID:       "acc-demo",
		Owner:    "Demo Trader",
		Currency: "USD",
		Balance:  decimal.NewFromInt(100_000),
	}})
	f := New(repository.New[repository.StoredOrder](), accounts, s.bus)

	accepted, err := f.PlaceOrder(ctx, facadeOrder("BTCUSD", 1, 64_000))
	rejected, _ := f.PlaceOrder(ctx, facadeOrder("", 0, 0))
	broke, _ := f.PlaceOrder(ctx, facadeOrder("BTCUSD", 10, 64_000))

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "One entry point sequencing validate → persist → publish",
		Result: map[string]any{
			"accepted":   accepted,
			"rejected":   rejected,
			"overbudget": broke,
			"error":      err == nil,
		},
		Metadata: map[string]any{"stored_orders": f.Store().Count()},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	bus := observer.NewEventBus()
	published := make(chan observer.Event, 1)
	bus.Subscribe("orders.placed", func(ev observer.Event) { published <- ev })

	accounts := repository.New[repository.StoredAccount]()
	accounts.Add(repository.StoredAccount{Account: domain.Account{
		ID:      "acc-demo",
		Balance: decimal.NewFromInt(100_000),
	}})
	f := New(repository.New[repository.StoredOrder](), accounts, bus)

	placement, err := f.PlaceOrder(ctx, facadeOrder("BTCUSD", 1, 64_000))
	result.AddCheck("valid order flows through", err == nil && placement.Published,
		"err=%v published=%v", err, placement.Published)
	result.AddCheck("order persisted as PLACED",
		placement.Order.Status == domain.StatusPlaced && f.Store().Count() == 1,
		"status=%s count=%d", placement.Order.Status, f.Store().Count())

	select {
	case ev := <-published:
		result.AddCheck("placement event published", ev.Topic == "orders.placed",
			"topic=%s", ev.Topic)
	case <-time.After(time.Second):
		result.AddCheck("placement event published", false, "no event within 1s")
	}

	rejected, err := f.PlaceOrder(ctx, facadeOrder("", 0, 0))
	result.AddCheck("invalid order rejected without persisting",
		err == nil && !rejected.Validation.Valid && f.Store().Count() == 1,
		"errors=%v count=%d", rejected.Validation.Errors, f.Store().Count())

	broke, err := f.PlaceOrder(ctx, facadeOrder("BTCUSD", 10, 64_000))
	result.AddCheck("order above account balance rejected",
		err == nil && !broke.Validation.Valid && f.Store().Count() == 1,
		"errors=%v", broke.Validation.Errors)

	result.Finish()
	return result
}
