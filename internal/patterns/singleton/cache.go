// Package singleton demonstrates a process-lifetime market data cache.
// The instance is created once via sync.Once and handed to collaborators
// by reference; callers never reach for package globals themselves.
package singleton

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is one cached market price.
type Quote struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MarketDataCache holds last-known quotes for the whole process.
type MarketDataCache struct {
	mu     sync.RWMutex
	quotes map[string]Quote
	hits   int64
	misses int64
}

var (
	once     sync.Once
	instance *MarketDataCache
)

// Instance returns the process-wide cache, creating it on first use.
func Instance() *MarketDataCache {
	once.Do(func() {
		instance = &MarketDataCache{quotes: make(map[string]Quote)}
	})
	return instance
}

// SetQuote stores the latest price for a symbol.
func (c *MarketDataCache) SetQuote(symbol string, price decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[symbol] = Quote{Symbol: symbol, Price: price, UpdatedAt: time.Now()}
}

// GetQuote returns the cached quote, tracking hit/miss counters.
func (c *MarketDataCache) GetQuote(symbol string) (Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.quotes[symbol]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return q, ok
}

// Stats returns hit/miss counts and cache size.
func (c *MarketDataCache) Stats() (hits, misses int64, size int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses, len(c.quotes)
}
