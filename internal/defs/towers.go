// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds the static balance data for one tower type.
type TowerDefinition struct {
	Type           TowerType  `yaml:"type"`
	BaseCost       int        `yaml:"base_cost"`
	PriceScale     float64    `yaml:"price_scale"` // Cost multiplier per tower of this type already owned
	Damage         float64    `yaml:"damage"`
	Range          float64    `yaml:"range"`           // In tiles
	ReloadInterval float64    `yaml:"reload_interval"` // Milliseconds between shots
	Color          color.RGBA `yaml:"-"`
}

// DefaultTowers is the built-in tower balance.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{Type: TowerBasic, BaseCost: 15, PriceScale: 1.4, Damage: 1, Range: 3, ReloadInterval: 1000, Color: color.RGBA{255, 0, 0, 255}},
		{Type: TowerSniper, BaseCost: 20, PriceScale: 1.5, Damage: 3, Range: 7, ReloadInterval: 3000, Color: color.RGBA{0, 0, 255, 255}},
		{Type: TowerCannon, BaseCost: 30, PriceScale: 1.5, Damage: 5, Range: 4, ReloadInterval: 2000, Color: color.RGBA{255, 255, 0, 255}},
		{Type: TowerRailcannon, BaseCost: 60, PriceScale: 1.6, Damage: 12, Range: 9, ReloadInterval: 4000, Color: color.RGBA{180, 50, 230, 255}},
	}
}
