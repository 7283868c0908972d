// internal/event/payloads.go
package event

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/gridmap"
)

// WaveData accompanies WaveStarted.
type WaveData struct {
	Number  int
	Enemies int
	Bonus   int
}

// EnemyData accompanies EnemySpawned, EnemyKilled and EnemyEscaped.
type EnemyData struct {
	ID     types.EntityID
	Type   defs.EnemyType
	Health float64 // Remaining health; the base damage for EnemyEscaped
	Bounty int
}

// TowerData accompanies TowerPlaced, TowerUpgraded and TowerSold.
type TowerData struct {
	ID       types.EntityID
	Type     defs.TowerType
	Position gridmap.Point
	Level    int
	Money    int // Amount debited or credited
}

// ShotData accompanies TowerFired.
type ShotData struct {
	Tower  types.EntityID
	Enemy  types.EntityID
	Damage float64
}
