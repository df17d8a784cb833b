package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a trading account holding a single-currency balance.
type Account struct {
	ID        string          `json:"id"`
	Owner     string          `json:"owner"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// CanAfford reports whether the account balance covers the given amount.
func (a Account) CanAfford(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
