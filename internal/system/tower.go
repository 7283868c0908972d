// internal/system/tower.go
package system

import (
	"errors"
	"fmt"
	"math"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/internal/utils"
	"grid-tower-defense/pkg/gridmap"
)

var (
	ErrTileNotEmpty     = errors.New("tile is not empty")
	ErrTowerNotFound    = errors.New("tower not found")
	ErrUnknownTowerType = errors.New("unknown tower type")
)

// TowerSystem is the tower registry: placement, per-type pricing, upgrades and sales.
// It only touches the grid and the economy.
type TowerSystem struct {
	ecs             *entity.State
	balance         *defs.Balance
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
}

func NewTowerSystem(ecs *entity.State, balance *defs.Balance, economy *EconomySystem, eventDispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{
		ecs:             ecs,
		balance:         balance,
		economy:         economy,
		eventDispatcher: eventDispatcher,
	}
}

// CurrentCost is floor(baseCost × priceScale^owned) for the type. Unknown
// types cost nothing and cannot be placed.
func (s *TowerSystem) CurrentCost(towerType defs.TowerType) int {
	def, ok := s.balance.Tower(towerType)
	if !ok {
		return 0
	}
	owned := s.ecs.Owned[towerType]
	return utils.FloorCost(float64(def.BaseCost) * math.Pow(def.PriceScale, float64(owned)))
}

// UpgradeCost is floor(currentCost × 0.75 × level).
func (s *TowerSystem) UpgradeCost(tower *component.Tower) int {
	return utils.FloorCost(float64(s.CurrentCost(tower.Type)) * config.UpgradeCostFactor * float64(tower.Level))
}

// SellValue is floor(currentCost × 0.5).
func (s *TowerSystem) SellValue(tower *component.Tower) int {
	return utils.FloorCost(float64(s.CurrentCost(tower.Type)) * config.SellRefundFactor)
}

// CanPlace reports whether a tower of the given type fits on p right now.
func (s *TowerSystem) CanPlace(p gridmap.Point, towerType defs.TowerType) bool {
	return s.checkPlace(p, towerType) == nil
}

func (s *TowerSystem) checkPlace(p gridmap.Point, towerType defs.TowerType) error {
	if _, ok := s.balance.Tower(towerType); !ok {
		return fmt.Errorf("%v: %w", towerType, ErrUnknownTowerType)
	}
	if !s.ecs.Grid.Contains(p) {
		return fmt.Errorf("place at %s: %w", p, gridmap.ErrOutOfBounds)
	}
	if tile := s.ecs.Grid.At(p); tile != gridmap.Empty {
		return fmt.Errorf("place at %s (%s): %w", p, tile, ErrTileNotEmpty)
	}
	if cost := s.CurrentCost(towerType); !s.economy.CanAfford(cost) {
		return fmt.Errorf("place %s for %d: %w", towerType, cost, ErrInsufficientFunds)
	}
	return nil
}

// Place buys a tower of the given type and puts it on p.
func (s *TowerSystem) Place(p gridmap.Point, towerType defs.TowerType) (*component.Tower, error) {
	if err := s.checkPlace(p, towerType); err != nil {
		return nil, err
	}
	cost := s.CurrentCost(towerType)
	if err := s.economy.Debit(cost); err != nil {
		return nil, err
	}

	def, _ := s.balance.Tower(towerType)
	tower := &component.Tower{
		ID:             s.ecs.NewEntity(),
		Type:           towerType,
		Position:       p,
		Level:          1,
		Damage:         def.Damage,
		Range:          def.Range,
		ReloadInterval: def.ReloadInterval,
	}
	s.ecs.Towers = append(s.ecs.Towers, tower)
	s.ecs.Owned[towerType]++
	_ = s.ecs.Grid.Set(p, gridmap.Tower)

	s.dispatch(event.TowerPlaced, tower, cost)
	return tower, nil
}

// CanUpgrade reports whether the player can pay for the tower's next level.
func (s *TowerSystem) CanUpgrade(tower *component.Tower) bool {
	return s.economy.CanAfford(s.UpgradeCost(tower))
}

// Upgrade raises the tower one level: damage ×1.5, range ×1.2, reload ×0.8.
func (s *TowerSystem) Upgrade(id types.EntityID) (*component.Tower, error) {
	tower, ok := s.ecs.Tower(id)
	if !ok {
		return nil, fmt.Errorf("upgrade tower %d: %w", id, ErrTowerNotFound)
	}
	cost := s.UpgradeCost(tower)
	if err := s.economy.Debit(cost); err != nil {
		return nil, fmt.Errorf("upgrade %s to level %d: %w", tower.Type, tower.Level+1, err)
	}

	tower.Level++
	tower.Damage *= config.UpgradeDamage
	tower.Range *= config.UpgradeRange
	tower.ReloadInterval *= config.UpgradeReload

	s.dispatch(event.TowerUpgraded, tower, cost)
	return tower, nil
}

// Sell removes the tower, refunds half the type's current cost and frees the tile.
func (s *TowerSystem) Sell(id types.EntityID) (int, error) {
	tower, ok := s.ecs.Tower(id)
	if !ok {
		return 0, fmt.Errorf("sell tower %d: %w", id, ErrTowerNotFound)
	}
	refund := s.SellValue(tower)

	s.ecs.RemoveTower(id)
	if s.ecs.Owned[tower.Type] > 0 {
		s.ecs.Owned[tower.Type]--
	}
	_ = s.ecs.Grid.Set(tower.Position, gridmap.Empty)
	s.economy.Credit(refund)

	s.dispatch(event.TowerSold, tower, refund)
	return refund, nil
}

func (s *TowerSystem) dispatch(eventType event.EventType, tower *component.Tower, money int) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: eventType,
		Tick: s.ecs.Tick,
		Data: event.TowerData{
			ID:       tower.ID,
			Type:     tower.Type,
			Position: tower.Position,
			Level:    tower.Level,
			Money:    money,
		},
	})
}
