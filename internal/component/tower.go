// internal/component/tower.go
package component

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/gridmap"
)

// Tower is a placed tower. Stats are copied from its definition at placement
// time and only change through upgrades.
type Tower struct {
	ID             types.EntityID
	Type           defs.TowerType
	Position       gridmap.Point
	Level          int
	Damage         float64
	Range          float64 // In tiles
	ReloadInterval float64 // Milliseconds
	Cooldown       int     // Ticks until the tower may fire again
	Shots          int     // Shots fired
	DamageDealt    float64 // Cumulative damage removed from enemies
}
