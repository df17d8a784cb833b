package infra

import (
	"context"
	"time"
)

const (
	// Per-retry step for linear backoff.
	stepDelay = 100 * time.Millisecond
	maxDelay  = 3 * time.Second
)

// LinearBackoff returns the wait before retry number attempt (1-based).
// Logic: attempt * 100ms, capped at maxDelay. Non-positive attempts
// return the single step.
func LinearBackoff(attempt int) time.Duration {
	if attempt <= 0 {
		return stepDelay
	}

	backoff := time.Duration(attempt) * stepDelay
	if backoff > maxDelay {
		return maxDelay
	}

	return backoff
}

// SleepContext waits for d or until ctx is done, whichever comes first.
// Returns ctx.Err() when the wait was cut short.
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
