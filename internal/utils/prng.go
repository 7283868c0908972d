// internal/utils/prng.go
package utils

import (
	"grid-tower-defense/internal/defs"
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so maps and waves are reproducible
// from a single seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed is replaced with the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseEnemy picks an enemy type uniformly from the roster.
func (s *PRNGService) ChooseEnemy(roster []defs.EnemyType) defs.EnemyType {
	if len(roster) == 0 {
		return defs.EnemyGrunt
	}
	return roster[s.Intn(len(roster))]
}
