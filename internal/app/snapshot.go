// internal/app/snapshot.go
package app

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/gridmap"
)

// TowerInfo is what the tower panel shows for the selected tower.
type TowerInfo struct {
	Tower       component.Tower
	UpgradeCost int
	SellValue   int
	CanUpgrade  bool
}

// Snapshot is a read-only copy of the state taken at a tick boundary.
// Nothing in it aliases live simulation data.
type Snapshot struct {
	Tick          uint64
	Phase         component.Phase
	Grid          *gridmap.Grid
	Path          []gridmap.Point
	Towers        []component.Tower
	Enemies       []component.Enemy
	Money         int
	BaseHealth    float64
	MaxBaseHealth float64
	WaveNumber    int
	Queued        int
	Speed         int
	SelectedType  defs.TowerType
	Selected      *TowerInfo
	Costs         map[defs.TowerType]int
}

// Snapshot copies the current state for renderers and labels.
func (g *Game) Snapshot() Snapshot {
	s := g.State
	snap := Snapshot{
		Tick:          s.Tick,
		Phase:         s.Phase,
		Grid:          s.Grid.Clone(),
		Path:          append([]gridmap.Point(nil), s.Path...),
		Towers:        make([]component.Tower, 0, len(s.Towers)),
		Enemies:       make([]component.Enemy, 0, len(s.Enemies)),
		Money:         s.Economy.Money,
		BaseHealth:    s.Economy.BaseHealth,
		MaxBaseHealth: g.options.InitialBaseHealth,
		WaveNumber:    s.Wave.Number,
		Queued:        len(s.Wave.Queue),
		Speed:         g.Speed(),
		SelectedType:  g.SelectedType,
		Costs:         make(map[defs.TowerType]int, len(defs.TowerTypes)),
	}
	for _, t := range s.Towers {
		snap.Towers = append(snap.Towers, *t)
	}
	for _, e := range s.Enemies {
		if !e.Removed {
			snap.Enemies = append(snap.Enemies, *e)
		}
	}
	for _, t := range defs.TowerTypes {
		snap.Costs[t] = g.TowerSystem.CurrentCost(t)
	}
	if tower, ok := g.SelectedTower(); ok {
		snap.Selected = &TowerInfo{
			Tower:       *tower,
			UpgradeCost: g.TowerSystem.UpgradeCost(tower),
			SellValue:   g.TowerSystem.SellValue(tower),
			CanUpgrade:  g.TowerSystem.CanUpgrade(tower),
		}
	}
	return snap
}
