// Package builder demonstrates fluent construction of an order with
// validation deferred until Build.
package builder

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/pkg/idgen"
)

// OrderBuilder accumulates order fields; errors surface only at Build.
type OrderBuilder struct {
	accountID string
	symbol    string
	side      domain.Side
	quantity  decimal.Decimal
	price     decimal.Decimal
}

// NewOrderBuilder starts an empty builder.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{}
}

func (b *OrderBuilder) ForAccount(accountID string) *OrderBuilder {
	b.accountID = accountID
	return b
}

func (b *OrderBuilder) WithSymbol(symbol string) *OrderBuilder {
	b.symbol = strings.ToUpper(symbol)
	return b
}

func (b *OrderBuilder) Buy() *OrderBuilder {
	b.side = domain.SideBuy
	return b
}

func (b *OrderBuilder) Sell() *OrderBuilder {
	b.side = domain.SideSell
	return b
}

func (b *OrderBuilder) WithQuantity(qty decimal.Decimal) *OrderBuilder {
	b.quantity = qty
	return b
}

func (b *OrderBuilder) WithPrice(price decimal.Decimal) *OrderBuilder {
	b.price = price
	return b
}

// Build validates required fields and produces the order.
func (b *OrderBuilder) Build() (domain.Order, error) {
	var missing []string
	if b.accountID == "" {
		missing = append(missing, "account")
	}
	if b.symbol == "" {
		missing = append(missing, "symbol")
	}
	if b.side == "" {
		missing = append(missing, "side")
	}
	if len(missing) > 0 {
		return domain.Order{}, fmt.Errorf("order builder: missing required fields: %s",
			strings.Join(missing, ", "))
	}

	if b.quantity.LessThanOrEqual(decimal.Zero) {
		return domain.Order{}, fmt.Errorf("order builder: quantity must be positive, got %s", b.quantity)
	}
	if b.price.LessThanOrEqual(decimal.Zero) {
		return domain.Order{}, fmt.Errorf("order builder: price must be positive, got %s", b.price)
	}

	now := time.Now()
	return domain.Order{
		ID:        idgen.NewOrderID(),
		AccountID: b.accountID,
		Symbol:    b.symbol,
		Side:      b.side,
		Quantity:  b.quantity,
		Price:     b.price,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}, nil
}
