package state

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

func (s *Scenario) Name() string { return "state" }

func lifecycleOrder(qty int64) *LifecycleOrder {
	return NewLifecycleOrder(domain.Order{
		ID:       idgen.NewOrderID(),
		Symbol:   "BTCUSD",
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(qty),
		Price:    decimal.NewFromInt(64_000),
	})
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	o := lifecycleOrder(10)

	var steps []map[string]any
	record := func(op string, err error) {
		step := map[string]any{"op": op, "status": string(o.Status())}
		if err != nil {
			step["error"] = err.Error()
		}
		steps = append(steps, step)
	}

	record("start", nil)
	record("place", o.Place())
	record("fill 4", o.Fill(decimal.NewFromInt(4)))
	record("fill 6", o.Fill(decimal.NewFromInt(6)))
	record("cancel after filled", o.Cancel())

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Order lifecycle state machine; illegal transitions return errors",
		Result:      steps,
		Metadata: map[string]any{
			"filled_qty": o.Order.FilledQty,
			"terminal":   o.Terminal(),
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	// Pending → Place → full Fill ends Filled.
	o := lifecycleOrder(5)
	err1 := o.Place()
	err2 := o.Fill(decimal.NewFromInt(5))
	result.AddCheck("place then full fill ends filled",
		err1 == nil && err2 == nil && o.Status() == domain.StatusFilled,
		"status=%s", o.Status())
	result.AddCheck("filled order is terminal, not open",
		o.Terminal() && !o.Open(),
		"terminal=%v open=%v", o.Terminal(), o.Open())

	// Every operation on a filled order must fail.
	for _, step := range []struct {
		name string
		err  error
	}{
		{"cancel", o.Cancel()},
		{"fill", o.Fill(decimal.NewFromInt(1))},
		{"reject", o.Reject("late")},
	} {
		result.AddCheck("filled order refuses "+step.name,
			errors.Is(step.err, domain.ErrInvalidTransition),
			"err=%v", step.err)
	}

	// Partial fill path.
	p := lifecycleOrder(10)
	_ = p.Place()
	err := p.Fill(decimal.NewFromInt(4))
	result.AddCheck("partial fill moves to partially filled",
		err == nil && p.Status() == domain.StatusPartiallyFilled && p.Remaining().Equal(decimal.NewFromInt(6)),
		"status=%s remaining=%s", p.Status(), p.Remaining())

	err = p.Fill(decimal.NewFromInt(20))
	result.AddCheck("overfill rejected", err != nil, "err=%v", err)

	// Fill before placing is illegal.
	fresh := lifecycleOrder(1)
	err = fresh.Fill(decimal.NewFromInt(1))
	result.AddCheck("pending order cannot fill",
		errors.Is(err, domain.ErrInvalidTransition), "err=%v", err)

	// Reject records the reason.
	r := lifecycleOrder(1)
	err = r.Reject("insufficient margin")
	result.AddCheck("reject stores reason",
		err == nil && r.Status() == domain.StatusRejected && r.Reason == "insufficient margin",
		"status=%s reason=%s", r.Status(), r.Reason)

	result.Finish()
	return result
}
