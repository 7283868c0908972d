// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type   EnemyType  `yaml:"type"`
	Health float64    `yaml:"health"` // Health at wave 1, scaled by ceil(wave^1.3)
	Speed  float64    `yaml:"speed"`
	Bounty int        `yaml:"bounty"` // Money credited on kill
	Color  color.RGBA `yaml:"-"`
}

// DefaultEnemies is the built-in enemy roster.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{Type: EnemyGrunt, Health: 10, Speed: 1, Bounty: 5, Color: color.RGBA{0, 255, 0, 255}},
		{Type: EnemyFast, Health: 5, Speed: 2, Bounty: 3, Color: color.RGBA{255, 0, 0, 255}},
		{Type: EnemyTank, Health: 20, Speed: 0.5, Bounty: 10, Color: color.RGBA{0, 0, 255, 255}},
	}
}
