package infra

import (
	"math/rand"
	"sync"
)

// SeededRand is a mutex-guarded pseudo-random source with a fixed seed.
// Each fake gateway owns its own instance so simulated outcomes stay
// deterministic even under concurrent requests; the shared global source
// is never used.
type SeededRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRand creates a deterministic source from the given seed.
func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next value in [0.0, 1.0).
func (s *SeededRand) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
