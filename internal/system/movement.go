// internal/system/movement.go
package system

import (
	"math"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
)

// MovementSystem walks live enemies along the path and resolves escapes.
type MovementSystem struct {
	ecs             *entity.State
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
	// SpeedMultiplier converts enemy speed into tiles per tick.
	SpeedMultiplier float64
}

func NewMovementSystem(ecs *entity.State, economy *EconomySystem, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		economy:         economy,
		eventDispatcher: eventDispatcher,
		SpeedMultiplier: config.EnemySpeedScale,
	}
}

// Update moves every live enemy one tick toward its next waypoint. An enemy
// that passes the last waypoint escapes: its remaining health is taken off
// the base and it leaves the live set. It returns the number of escapes.
func (s *MovementSystem) Update() int {
	path := s.ecs.Path
	escaped := 0
	for _, enemy := range s.ecs.Enemies {
		if enemy.Removed {
			continue
		}
		if enemy.PathIndex < len(path) {
			target := path[enemy.PathIndex]
			tx, ty := float64(target.X), float64(target.Y)

			dx := tx - enemy.X
			dy := ty - enemy.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			step := enemy.Speed * s.SpeedMultiplier

			if dist <= step {
				enemy.X = tx
				enemy.Y = ty
				enemy.PathIndex++
			} else {
				enemy.X += (dx / dist) * step
				enemy.Y += (dy / dist) * step
			}
		}
		if enemy.PathIndex >= len(path) {
			s.escape(enemy)
			escaped++
		}
	}
	return escaped
}

func (s *MovementSystem) escape(enemy *component.Enemy) {
	if enemy.Removed {
		return
	}
	enemy.Removed = true
	s.economy.DamageBase(enemy.Health)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyEscaped,
		Tick: s.ecs.Tick,
		Data: event.EnemyData{ID: enemy.ID, Type: enemy.Type, Health: enemy.Health, Bounty: enemy.Bounty},
	})
}
