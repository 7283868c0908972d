// internal/app/tower_management.go
package app

import (
	"fmt"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/system"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/gridmap"
)

// SelectTowerType chooses the type PlaceTower will build.
func (g *Game) SelectTowerType(towerType defs.TowerType) error {
	if _, ok := g.Balance.Tower(towerType); !ok {
		return fmt.Errorf("select %v: %w", towerType, system.ErrUnknownTowerType)
	}
	g.SelectedType = towerType
	return nil
}

// PlaceTower builds the selected tower type on p.
func (g *Game) PlaceTower(p gridmap.Point) (*component.Tower, error) {
	if err := g.checkCommand(); err != nil {
		return nil, err
	}
	tower, err := g.TowerSystem.Place(p, g.SelectedType)
	if err != nil {
		return nil, err
	}
	g.selectedTower = tower.ID
	return tower, nil
}

// UpgradeTower upgrades the tower with the given ID.
func (g *Game) UpgradeTower(id types.EntityID) (*component.Tower, error) {
	if err := g.checkCommand(); err != nil {
		return nil, err
	}
	return g.TowerSystem.Upgrade(id)
}

// UpgradeTowerAt upgrades the tower standing on p.
func (g *Game) UpgradeTowerAt(p gridmap.Point) (*component.Tower, error) {
	tower, ok := g.State.TowerAt(p)
	if !ok {
		return nil, fmt.Errorf("upgrade at %s: %w", p, system.ErrTowerNotFound)
	}
	return g.UpgradeTower(tower.ID)
}

// SellTower sells the tower with the given ID and returns the refund.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	if err := g.checkCommand(); err != nil {
		return 0, err
	}
	refund, err := g.TowerSystem.Sell(id)
	if err != nil {
		return 0, err
	}
	if g.selectedTower == id {
		g.selectedTower = 0
	}
	return refund, nil
}

// SellTowerAt sells the tower standing on p.
func (g *Game) SellTowerAt(p gridmap.Point) (int, error) {
	tower, ok := g.State.TowerAt(p)
	if !ok {
		return 0, fmt.Errorf("sell at %s: %w", p, system.ErrTowerNotFound)
	}
	return g.SellTower(tower.ID)
}

// SelectTower marks the tower on p for inspection. Selecting a tile without
// a tower clears the selection.
func (g *Game) SelectTower(p gridmap.Point) bool {
	tower, ok := g.State.TowerAt(p)
	if !ok {
		g.selectedTower = 0
		return false
	}
	g.selectedTower = tower.ID
	return true
}

// SelectedTower returns the tower under inspection, if any.
func (g *Game) SelectedTower() (*component.Tower, bool) {
	if g.selectedTower == 0 {
		return nil, false
	}
	return g.State.Tower(g.selectedTower)
}

// ClearSelection drops the inspected tower.
func (g *Game) ClearSelection() {
	g.selectedTower = 0
}

// SkipToNextWave starts the next wave now instead of waiting for the
// current one to resolve.
func (g *Game) SkipToNextWave() error {
	if g.State.Phase != component.Running {
		return fmt.Errorf("skip wave while %s: %w", g.State.Phase, ErrNotRunning)
	}
	g.WaveSystem.StartWave()
	return nil
}

// TowerCost is the current price of the given type.
func (g *Game) TowerCost(towerType defs.TowerType) int {
	return g.TowerSystem.CurrentCost(towerType)
}

// UpgradeCost is the price of the tower's next level.
func (g *Game) UpgradeCost(id types.EntityID) (int, error) {
	tower, ok := g.State.Tower(id)
	if !ok {
		return 0, fmt.Errorf("upgrade cost of tower %d: %w", id, system.ErrTowerNotFound)
	}
	return g.TowerSystem.UpgradeCost(tower), nil
}

// SellValue is what selling the tower would refund right now.
func (g *Game) SellValue(id types.EntityID) (int, error) {
	tower, ok := g.State.Tower(id)
	if !ok {
		return 0, fmt.Errorf("sell value of tower %d: %w", id, system.ErrTowerNotFound)
	}
	return g.TowerSystem.SellValue(tower), nil
}

// CanPlace reports whether the selected type can be built on p.
func (g *Game) CanPlace(p gridmap.Point) bool {
	return g.checkCommand() == nil && g.TowerSystem.CanPlace(p, g.SelectedType)
}

func (g *Game) checkCommand() error {
	if g.State.Phase == component.GameOver {
		return ErrGameOver
	}
	return nil
}
