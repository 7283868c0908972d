// internal/system/combat.go
package system

import (
	"math"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/utils"
)

// rangeEpsilon lets an enemy sitting exactly on the range boundary be hit.
const rangeEpsilon = 1e-9

// CombatSystem lets every ready tower shoot the nearest enemy in range.
type CombatSystem struct {
	ecs             *entity.State
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.State, economy *EconomySystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		economy:         economy,
		eventDispatcher: eventDispatcher,
	}
}

// Update runs towers in placement order. Cooldowns tick down by one per call;
// a ready tower with no target stays ready. It returns the number of kills.
func (s *CombatSystem) Update() int {
	kills := 0
	for _, tower := range s.ecs.Towers {
		if tower.Cooldown > 0 {
			tower.Cooldown--
			if tower.Cooldown > 0 {
				continue
			}
		}

		target := s.findNearestEnemyInRange(tower)
		if target == nil {
			continue
		}
		if s.fire(tower, target) {
			kills++
		}
	}
	return kills
}

// findNearestEnemyInRange returns the closest live enemy within the tower's
// range. Equal distances go to the enemy that spawned first.
func (s *CombatSystem) findNearestEnemyInRange(tower *component.Tower) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.MaxFloat64
	tx, ty := float64(tower.Position.X), float64(tower.Position.Y)
	for _, enemy := range s.ecs.Enemies {
		if enemy.Removed {
			continue
		}
		distance := utils.Distance(tx, ty, enemy.X, enemy.Y)
		if distance <= tower.Range+rangeEpsilon && distance < minDistance {
			minDistance = distance
			nearest = enemy
		}
	}
	return nearest
}

// fire applies one shot and restarts the tower's cooldown. It reports
// whether the shot killed the target.
func (s *CombatSystem) fire(tower *component.Tower, enemy *component.Enemy) bool {
	dealt := math.Min(tower.Damage, enemy.Health)
	enemy.Health -= tower.Damage
	if enemy.Health < 0 {
		enemy.Health = 0
	}
	tower.DamageDealt += dealt
	tower.Shots++
	tower.Cooldown = utils.MillisToTicks(tower.ReloadInterval, config.TickRate)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerFired,
		Tick: s.ecs.Tick,
		Data: event.ShotData{Tower: tower.ID, Enemy: enemy.ID, Damage: dealt},
	})

	if enemy.Health <= 0 {
		return s.kill(enemy)
	}
	return false
}

// kill removes a dead enemy and pays its bounty. Repeated calls for the same
// enemy are no-ops.
func (s *CombatSystem) kill(enemy *component.Enemy) bool {
	if enemy.Removed {
		return false
	}
	enemy.Removed = true
	s.economy.Credit(enemy.Bounty)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Tick: s.ecs.Tick,
		Data: event.EnemyData{ID: enemy.ID, Type: enemy.Type, Health: enemy.Health, Bounty: enemy.Bounty},
	})
	return true
}
