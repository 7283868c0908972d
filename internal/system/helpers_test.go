package system

import (
	"testing"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/utils"
	"grid-tower-defense/pkg/gridmap"
)

type testWorld struct {
	state    *entity.State
	balance  *defs.Balance
	events   *event.Dispatcher
	recorded []event.Event
	economy  *EconomySystem
	towers   *TowerSystem
	waves    *WaveSystem
	movement *MovementSystem
	combat   *CombatSystem
}

// newTestWorld builds a world from rows of '.' (empty) and '#' (rock). The
// shortest entry-to-exit path is carved into the grid.
func newTestWorld(t *testing.T, money int, rows ...string) *testWorld {
	t.Helper()
	grid := gridmap.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				grid.Tiles[y*grid.Width+x] = gridmap.Rock
			}
		}
	}
	path := gridmap.FindPath(grid, grid.Entry(), grid.Exit())
	if path == nil {
		t.Fatalf("test grid has no path")
	}
	for _, p := range path {
		_ = grid.Set(p, gridmap.Path)
	}

	w := &testWorld{
		state:   entity.NewState(grid, path, money, 100),
		balance: defs.DefaultBalance(),
		events:  event.NewDispatcher(),
	}
	w.events.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.recorded = append(w.recorded, e)
	}))
	w.economy = NewEconomySystem(w.state)
	w.towers = NewTowerSystem(w.state, w.balance, w.economy, w.events)
	w.waves = NewWaveSystem(w.state, w.balance, utils.NewPRNGService(7), w.economy, w.events)
	w.movement = NewMovementSystem(w.state, w.economy, w.events)
	w.combat = NewCombatSystem(w.state, w.economy, w.events)
	return w
}

func (w *testWorld) count(eventType event.EventType) int {
	n := 0
	for _, e := range w.recorded {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (w *testWorld) addEnemy(x, y, health float64, bounty int) *component.Enemy {
	enemy := &component.Enemy{
		ID:        w.state.NewEntity(),
		Type:      defs.EnemyGrunt,
		X:         x,
		Y:         y,
		PathIndex: 1,
		Health:    health,
		MaxHealth: health,
		Speed:     1,
		Bounty:    bounty,
	}
	w.state.Enemies = append(w.state.Enemies, enemy)
	return enemy
}

func (w *testWorld) addTower(x, y int, damage, rng, reload float64) *component.Tower {
	tower := &component.Tower{
		ID:             w.state.NewEntity(),
		Type:           defs.TowerBasic,
		Position:       gridmap.Point{X: x, Y: y},
		Level:          1,
		Damage:         damage,
		Range:          rng,
		ReloadInterval: reload,
	}
	w.state.Towers = append(w.state.Towers, tower)
	return tower
}

// openRows is a 5×3 map whose path runs along the top row and down the right column.
var openRows = []string{
	".....",
	".....",
	".....",
}
