// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps the standard random number generator so the whole
// simulation can run on a predictable (seeded) random source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A seed of 0 falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance returns true with probability p. p <= 0 never succeeds,
// p >= 1 always does.
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}
