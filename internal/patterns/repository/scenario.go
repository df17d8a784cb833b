package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
	"pattern_lab/pkg/idgen"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "repository" }

func storedOrder(symbol string, qty int64) StoredOrder {
	return StoredOrder{Order: domain.Order{
		ID:       idgen.NewOrderID(),
		Symbol:   symbol,
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(qty),
		Price:    decimal.NewFromInt(100),
		Status:   domain.StatusPending,
	}}
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	repo := New[StoredOrder]()
	uow := NewUnitOfWork()

	uow.Begin()
	first := storedOrder("BTCUSD", 1)
	second := storedOrder("ETHUSD", 5)
	repo.Add(first)
	repo.Add(second)
	uow.Commit()

	fetched, _ := repo.GetByID(first.ID)
	_ = repo.Delete(second.ID)

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Generic map-backed repository with a no-op unit of work",
		Result: map[string]any{
			"fetched":         fetched,
			"count_after_del": repo.Count(),
		},
		Metadata: map[string]any{"in_transaction": uow.InTransaction()},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}
	repo := New[StoredOrder]()

	o := storedOrder("BTCUSD", 2)
	repo.Add(o)

	got, err := repo.GetByID(o.ID)
	result.AddCheck("add then get", err == nil && got.Symbol == "BTCUSD", "err=%v", err)

	o.Symbol = "ETHUSD"
	err = repo.Update(o)
	got, _ = repo.GetByID(o.ID)
	result.AddCheck("update persists", err == nil && got.Symbol == "ETHUSD", "symbol=%s", got.Symbol)

	_, err = repo.GetByID("missing")
	result.AddCheck("missing id yields ErrNotFound", errors.Is(err, domain.ErrNotFound), "err=%v", err)

	err = repo.Delete(o.ID)
	result.AddCheck("delete removes", err == nil && repo.Count() == 0, "count=%d", repo.Count())

	uow := NewUnitOfWork()
	uow.Begin()
	inTx := uow.InTransaction()
	uow.Rollback()
	result.AddCheck("unit of work tracks boundary", inTx && !uow.InTransaction(),
		"active inside, inactive after rollback")

	result.Finish()
	return result
}
