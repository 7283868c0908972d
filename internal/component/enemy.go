// internal/component/enemy.go
package component

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
)

// EnemySpec is a queued enemy waiting to be spawned.
type EnemySpec struct {
	Type   defs.EnemyType
	Health float64 // Already scaled for the wave
	Speed  float64
	Bounty int
}

// Enemy is a live enemy walking the path.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	X, Y      float64 // Continuous position in tile space
	PathIndex int     // Index of the waypoint the enemy is heading to
	Health    float64
	MaxHealth float64
	Speed     float64
	Bounty    int
	Wave      int
	Removed   bool // Killed or escaped; skipped by every system until compacted
}
