// internal/state/effects.go
package state

import (
	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/render"
)

const (
	shotLifetime = 8 // frames
	hitLifetime  = 6
)

// effects collects short-lived visuals from game events.
type effects struct {
	game     *game.Game
	shots    []render.Shot
	hits     map[types.EntityID]int
	mapDirty bool
}

func newEffects(g *game.Game) *effects {
	return &effects{
		game:     g,
		hits:     make(map[types.EntityID]int),
		mapDirty: true,
	}
}

func (e *effects) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.TowerFired:
		data, ok := ev.Data.(event.ShotData)
		if !ok {
			return
		}
		tower, ok := e.game.State.Tower(data.Tower)
		if !ok {
			return
		}
		enemy, ok := e.game.State.Enemy(data.Enemy)
		if !ok {
			return
		}
		e.shots = append(e.shots, render.Shot{
			FromX: float64(tower.Position.X),
			FromY: float64(tower.Position.Y),
			ToX:   enemy.X,
			ToY:   enemy.Y,
		})
		e.hits[data.Enemy] = hitLifetime
	case event.GameReset:
		e.shots = e.shots[:0]
		e.hits = make(map[types.EntityID]int)
		e.mapDirty = true
	}
}

// age advances every effect by one frame and drops the expired ones.
func (e *effects) age() {
	kept := e.shots[:0]
	for _, s := range e.shots {
		s.Age++
		if s.Age < shotLifetime {
			kept = append(kept, s)
		}
	}
	e.shots = kept

	for id, left := range e.hits {
		if left <= 1 {
			delete(e.hits, id)
		} else {
			e.hits[id] = left - 1
		}
	}
}

func (e *effects) hitSet() map[types.EntityID]bool {
	set := make(map[types.EntityID]bool, len(e.hits))
	for id := range e.hits {
		set[id] = true
	}
	return set
}
