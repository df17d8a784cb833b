package command

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns/repository"
	"pattern_lab/pkg/idgen"
)

func testOrder() domain.Order {
	now := time.Now()
	return domain.Order{
		ID:        idgen.NewOrderID(),
		AccountID: "acc-test",
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

func TestExecuteFirstAttemptAuditTrail(t *testing.T) {
	handler := NewHandler(NewAuditLog())
	cmd := newScriptedCommand(0, false)

	result := handler.Execute(context.Background(), cmd)
	require.True(t, result.Success)

	trail := handler.Audit().ForCommand(cmd.ID())
	require.Len(t, trail, 2, "exactly EXECUTE then SUCCESS")
	require.Equal(t, ActionExecute, trail[0].Action)
	require.Equal(t, ActionSuccess, trail[1].Action)
	require.Equal(t, 0, trail[1].RetryCount)
	require.Positive(t, trail[1].Duration)
}

func TestExecuteRetriesReportedFailures(t *testing.T) {
	handler := NewHandler(NewAuditLog())
	cmd := newScriptedCommand(2, false) // fails twice, then succeeds

	result := handler.Execute(context.Background(), cmd)
	require.True(t, result.Success)
	require.Equal(t, 3, cmd.calls)

	trail := handler.Audit().ForCommand(cmd.ID())
	require.Equal(t, ActionSuccess, trail[len(trail)-1].Action)
	require.Equal(t, 2, trail[len(trail)-1].RetryCount)
}

func TestExecuteExhaustsBudgetOnPermanentFailure(t *testing.T) {
	handler := NewHandler(NewAuditLog())
	cmd := newScriptedCommand(99, false)

	result := handler.Execute(context.Background(), cmd)
	require.False(t, result.Success)
	require.Equal(t, 3, cmd.calls, "exactly maxAttempts attempts")
}

// panicCommand blows up on every attempt.
type panicCommand struct{ id string }

func (c *panicCommand) ID() string   { return c.id }
func (c *panicCommand) Name() string { return "panics" }
func (c *panicCommand) Execute(ctx context.Context) (Result, error) {
	panic("corrupted command state")
}
func (c *panicCommand) Undo(ctx context.Context) error { return nil }

func TestExecuteRecoversPanics(t *testing.T) {
	handler := NewHandler(NewAuditLog())
	cmd := &panicCommand{id: idgen.NewCommandID()}

	var result Result
	require.NotPanics(t, func() {
		result = handler.Execute(context.Background(), cmd)
	})
	require.False(t, result.Success)
	require.Contains(t, result.Message, "panicked")

	var exceptions int
	for _, e := range handler.Audit().ForCommand(cmd.ID()) {
		if e.Action == ActionException {
			exceptions++
		}
	}
	require.Equal(t, 3, exceptions, "every panicking attempt audited as EXCEPTION")
}

func TestExecuteConvertsErrorsToFailureResults(t *testing.T) {
	handler := NewHandler(NewAuditLog())
	cmd := newScriptedCommand(99, true)

	result := handler.Execute(context.Background(), cmd)
	require.False(t, result.Success)
	require.Contains(t, result.Message, "scripted error")

	var exceptions int
	for _, e := range handler.Audit().ForCommand(cmd.ID()) {
		if e.Action == ActionException {
			exceptions++
			require.Equal(t, "scripted error", e.Detail)
		}
	}
	require.Equal(t, 3, exceptions)
}

func TestExecuteStopsRetryingWhenCancelled(t *testing.T) {
	handler := NewHandler(NewAuditLog())
	cmd := newScriptedCommand(99, false)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result := handler.Execute(ctx, cmd)
	require.False(t, result.Success)
	require.Less(t, cmd.calls, 3, "cancellation cuts the retry loop short")
}

func TestPlaceOrderUndoDeletesFreshOrder(t *testing.T) {
	store := repository.New[repository.StoredOrder]()
	handler := NewHandler(NewAuditLog())

	cmd := NewPlaceOrderCommand(store, testOrder())
	result := handler.Execute(context.Background(), cmd)
	require.True(t, result.Success)
	require.Equal(t, 1, store.Count())

	require.NoError(t, cmd.Undo(context.Background()))
	require.Equal(t, 0, store.Count())
}

func TestPlaceOrderUndoRestoresPriorState(t *testing.T) {
	store := repository.New[repository.StoredOrder]()

	order := testOrder()
	prior := repository.StoredOrder{Order: order.WithStatus(domain.StatusCancelled)}
	store.Add(prior)

	// Re-place over the cancelled copy: the command snapshots it first.
	cmd := NewPlaceOrderCommand(store, order)
	result, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, result.Success)

	require.NoError(t, cmd.Undo(context.Background()))
	restored, getErr := store.GetByID(order.ID)
	require.NoError(t, getErr)
	require.Equal(t, domain.StatusCancelled, restored.Status)
}

func TestUndoWithoutExecuteFails(t *testing.T) {
	store := repository.New[repository.StoredOrder]()
	cmd := NewPlaceOrderCommand(store, testOrder())
	require.Error(t, cmd.Undo(context.Background()))
}

func TestQueueHoldsFIFOWithoutExecuting(t *testing.T) {
	handler := NewHandler(NewAuditLog())

	first := newScriptedCommand(0, false)
	second := newScriptedCommand(0, false)
	handler.Queue(first)
	handler.Queue(second)

	require.Equal(t, 2, handler.QueuedCount())
	require.Equal(t, []string{"scripted", "scripted"}, handler.PendingCommands())
	require.Zero(t, first.calls)
	require.Zero(t, second.calls)

	var queued int
	for _, e := range handler.Audit().Entries() {
		if e.Action == ActionQueued {
			queued++
		}
	}
	require.Equal(t, 2, queued)
}

func TestAuditLogAppendOnly(t *testing.T) {
	log := NewAuditLog()
	log.Append(AuditEntry{CommandID: "a", Action: ActionExecute})
	log.Append(AuditEntry{CommandID: "a", Action: ActionSuccess})
	log.Append(AuditEntry{CommandID: "b", Action: ActionQueued})

	require.Equal(t, 3, log.Len())
	require.Len(t, log.ForCommand("a"), 2)

	entries := log.Entries()
	require.False(t, entries[0].Timestamp.IsZero())
	require.Equal(t, ActionExecute, entries[0].Action)
	require.Equal(t, ActionQueued, entries[2].Action)
}
