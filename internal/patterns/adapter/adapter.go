// Package adapter demonstrates wrapping a legacy synchronous settlement
// client behind the context-based interface the rest of the system uses.
package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pattern_lab/internal/domain"
)

// Settler is the modern settlement contract.
type Settler interface {
	Settle(ctx context.Context, order domain.Order) (SettlementResult, error)
}

// SettlementResult reports one completed settlement.
type SettlementResult struct {
	Reference string    `json:"reference"`
	OrderID   string    `json:"order_id"`
	SettledAt time.Time `json:"settled_at"`
}

// LegacySettlementClient mimics an old blocking client with a
// string-based protocol. Its signature cannot change.
type LegacySettlementClient struct {
	processed int
}

// SettleSync settles synchronously and answers "OK:<ref>" or "ERR:<msg>".
func (c *LegacySettlementClient) SettleSync(orderID string, notional float64) string {
	if orderID == "" {
		return "ERR:missing order id"
	}
	if notional <= 0 {
		return "ERR:non-positive notional"
	}
	c.processed++
	return fmt.Sprintf("OK:settle-%s-%d", orderID, c.processed)
}

// LegacyAdapter adapts LegacySettlementClient to Settler.
type LegacyAdapter struct {
	legacy *LegacySettlementClient
}

// NewLegacyAdapter wraps the given legacy client.
func NewLegacyAdapter(legacy *LegacySettlementClient) *LegacyAdapter {
	return &LegacyAdapter{legacy: legacy}
}

// Settle translates the call, honours cancellation, and converts the
// legacy string protocol into a typed result or error.
func (a *LegacyAdapter) Settle(ctx context.Context, order domain.Order) (SettlementResult, error) {
	if err := ctx.Err(); err != nil {
		return SettlementResult{}, err
	}

	notional, _ := order.Notional().Float64()
	raw := a.legacy.SettleSync(order.ID, notional)

	if rest, ok := strings.CutPrefix(raw, "ERR:"); ok {
		return SettlementResult{}, fmt.Errorf("legacy settlement failed: %s", rest)
	}

	ref, ok := strings.CutPrefix(raw, "OK:")
	if !ok {
		return SettlementResult{}, fmt.Errorf("legacy settlement returned malformed response: %q", raw)
	}

	return SettlementResult{
		Reference: ref,
		OrderID:   order.ID,
		SettledAt: time.Now(),
	}, nil
}
