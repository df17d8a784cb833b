package command

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

func (s *Scenario) Name() string { return "command" }

func pendingOrder() domain.Order {
	now := time.Now()
	return domain.Order{
		ID:        idgen.NewOrderID(),
		AccountID: "acc-demo",
		Symbol:    "BTCUSD",
		Side:      domain.SideBuy,
		Quantity:  decimal.NewFromInt(1),
		Price:     decimal.NewFromInt(64_000),
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

// scriptedCommand fails a fixed number of times before succeeding; used
// by the demo/test sequences to exercise the retry budget.
type scriptedCommand struct {
	id       string
	failures int
	calls    int
	raise    bool
}

func newScriptedCommand(failures int, raise bool) *scriptedCommand {
	return &scriptedCommand{id: idgen.NewCommandID(), failures: failures, raise: raise}
}

func (c *scriptedCommand) ID() string   { return c.id }
func (c *scriptedCommand) Name() string { return "scripted" }

func (c *scriptedCommand) Execute(ctx context.Context) (Result, error) {
	c.calls++
	if c.calls <= c.failures {
		if c.raise {
			return Result{}, errors.New("scripted error")
		}
		return Result{Success: false, Message: "scripted failure"}, nil
	}
	return Result{Success: true, Message: "scripted success"}, nil
}

func (c *scriptedCommand) Undo(ctx context.Context) error { return nil }

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	store := repository.New[repository.StoredOrder]()
	handler := NewHandler(NewAuditLog())

	place := NewPlaceOrderCommand(store, pendingOrder())
	placed := handler.Execute(ctx, place)

	undoErr := place.Undo(ctx)
	_, afterUndo := store.GetByID(place.order.ID)

	flaky := newScriptedCommand(1, false)
	recovered := handler.Execute(ctx, flaky)

	handler.Queue(NewPlaceOrderCommand(store, pendingOrder()))

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Command objects with undo behind a retry/audit/queue handler",
		Result: map[string]any{
			"place_result":       placed,
			"undo_removed_order": errors.Is(afterUndo, domain.ErrNotFound),
			"undo_error":         undoErr == nil,
			"retry_recovered":    recovered,
			"queued":             handler.QueuedCount(),
		},
		Metadata: map[string]any{
			"audit_entries": handler.Audit().Len(),
			"pending":       handler.PendingCommands(),
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	// First-attempt success: exactly EXECUTE then SUCCESS, zero retries.
	handler := NewHandler(NewAuditLog())
	ok := newScriptedCommand(0, false)
	res := handler.Execute(ctx, ok)
	trail := handler.Audit().ForCommand(ok.ID())
	result.AddCheck("clean run audits EXECUTE then SUCCESS",
		res.Success && len(trail) == 2 &&
			trail[0].Action == ActionExecute && trail[1].Action == ActionSuccess &&
			trail[1].RetryCount == 0,
		"trail length %d", len(trail))

	// Permanent failure: exactly 3 attempts, final result unsuccessful.
	always := newScriptedCommand(99, false)
	res = handler.Execute(ctx, always)
	result.AddCheck("permanent failure stops after 3 attempts",
		!res.Success && always.calls == 3,
		"attempts=%d success=%v", always.calls, res.Success)

	// Errors consume the same budget and come back as a failure result.
	raising := newScriptedCommand(99, true)
	res = handler.Execute(ctx, raising)
	trail = handler.Audit().ForCommand(raising.ID())
	exceptions := 0
	for _, e := range trail {
		if e.Action == ActionException {
			exceptions++
		}
	}
	result.AddCheck("errors become failure results",
		!res.Success && exceptions == 3,
		"exception entries=%d", exceptions)

	// Undo restores prior state or deletes a fresh entity.
	store := repository.New[repository.StoredOrder]()
	place := NewPlaceOrderCommand(store, pendingOrder())
	handler.Execute(ctx, place)
	undoErr := place.Undo(ctx)
	result.AddCheck("undo deletes freshly placed order",
		undoErr == nil && store.Count() == 0,
		"count=%d err=%v", store.Count(), undoErr)

	// Queueing audits QUEUED and never executes.
	probe := newScriptedCommand(0, false)
	before := probe.calls
	handler.Queue(probe)
	result.AddCheck("queue holds without executing",
		handler.QueuedCount() == 1 && probe.calls == before,
		"queued=%d calls=%d", handler.QueuedCount(), probe.calls)

	result.Finish()
	return result
}
