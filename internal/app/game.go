// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/system"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/internal/utils"
	"grid-tower-defense/pkg/gridmap"
)

var (
	ErrNotRunning = errors.New("game is not running")
	ErrGameOver   = errors.New("game is over")
)

// Options configure a new game. Zero values fall back to the defaults in config.
type Options struct {
	Seed              int64
	Width             int
	Height            int
	RockProbability   float64
	MaxMapAttempts    int
	InitialMoney      int
	InitialBaseHealth float64
	Balance           *defs.Balance
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = config.MapWidth
	}
	if o.Height == 0 {
		o.Height = config.MapHeight
	}
	if o.RockProbability == 0 {
		o.RockProbability = config.RockProbability
	}
	if o.MaxMapAttempts == 0 {
		o.MaxMapAttempts = config.MaxMapAttempts
	}
	if o.InitialMoney == 0 {
		o.InitialMoney = config.InitialMoney
	}
	if o.InitialBaseHealth == 0 {
		o.InitialBaseHealth = config.InitialBaseHealth
	}
	if o.Balance == nil {
		o.Balance = defs.DefaultBalance()
	}
	return o
}

// Game is the simulation clock. It owns the state, runs the systems in a
// fixed order once per tick and applies player commands between ticks.
type Game struct {
	State           *entity.State
	Balance         *defs.Balance
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	Economy        *system.EconomySystem
	TowerSystem    *system.TowerSystem
	WaveSystem     *system.WaveSystem
	MovementSystem *system.MovementSystem
	CombatSystem   *system.CombatSystem

	SelectedType  defs.TowerType
	selectedTower types.EntityID
	speedIndex    int
	options       Options
}

// NewGame generates a map and returns a game in the NotStarted phase.
func NewGame(opts Options) (*Game, error) {
	opts = opts.withDefaults()
	g := &Game{
		Balance:         opts.Balance,
		Rng:             utils.NewPRNGService(opts.Seed),
		EventDispatcher: event.NewDispatcher(),
		SelectedType:    defs.TowerBasic,
		options:         opts,
	}
	if err := g.initState(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) initState() error {
	grid, path, err := gridmap.Generate(gridmap.GeneratorConfig{
		Width:           g.options.Width,
		Height:          g.options.Height,
		RockProbability: g.options.RockProbability,
		MaxAttempts:     g.options.MaxMapAttempts,
	}, g.Rng)
	if err != nil {
		return fmt.Errorf("init game (seed %d): %w", g.Rng.Seed(), err)
	}

	ecs := entity.NewState(grid, path, g.options.InitialMoney, g.options.InitialBaseHealth)
	g.State = ecs
	g.Economy = system.NewEconomySystem(ecs)
	g.TowerSystem = system.NewTowerSystem(ecs, g.Balance, g.Economy, g.EventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g.Balance, g.Rng, g.Economy, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Economy, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Economy, g.EventDispatcher)
	g.selectedTower = 0
	return nil
}

// Phase returns the current top-level state.
func (g *Game) Phase() component.Phase {
	return g.State.Phase
}

// StartGame moves a fresh game into Running and starts wave 1.
func (g *Game) StartGame() error {
	switch g.State.Phase {
	case component.NotStarted:
	case component.GameOver:
		return ErrGameOver
	default:
		return fmt.Errorf("start from %s: already started", g.State.Phase)
	}
	g.State.Phase = component.Running
	g.dispatch(event.GameStarted, nil)
	g.WaveSystem.StartWave()
	return nil
}

// TogglePause switches between Running and Paused. Paused ticks do nothing.
func (g *Game) TogglePause() error {
	switch g.State.Phase {
	case component.Running:
		g.State.Phase = component.Paused
	case component.Paused:
		g.State.Phase = component.Running
	default:
		return fmt.Errorf("toggle pause from %s: %w", g.State.Phase, ErrNotRunning)
	}
	g.dispatch(event.PauseToggled, g.State.Phase)
	return nil
}

// Reset regenerates the map and restores money, base health, waves and
// tower counts to their initial values, returning to NotStarted.
func (g *Game) Reset() error {
	if err := g.initState(); err != nil {
		return err
	}
	g.SelectedType = defs.TowerBasic
	log.Printf("[Game] reset: new %dx%d map, path length %d", g.State.Grid.Width, g.State.Grid.Height, len(g.State.Path))
	g.dispatch(event.GameReset, nil)
	return nil
}

// Tick advances the simulation by one step: waves, then movement, then
// combat. It does nothing unless the game is Running.
func (g *Game) Tick() {
	if g.State.Phase != component.Running {
		return
	}
	g.State.Tick++

	g.WaveSystem.Update()

	g.MovementSystem.Update()
	if g.Economy.IsDefeated() {
		g.gameOver()
		return
	}

	g.CombatSystem.Update()
	g.State.CompactEnemies()
}

// Update runs one frame: as many ticks as the current game speed.
func (g *Game) Update() {
	for i := 0; i < g.Speed(); i++ {
		g.Tick()
	}
}

// Speed is the number of ticks per frame.
func (g *Game) Speed() int {
	return config.GameSpeeds[g.speedIndex]
}

// CycleSpeed steps through x1, x2, x4 and returns the new speed.
func (g *Game) CycleSpeed() int {
	g.speedIndex = (g.speedIndex + 1) % len(config.GameSpeeds)
	return g.Speed()
}

func (g *Game) gameOver() {
	g.State.CompactEnemies()
	g.State.Phase = component.GameOver
	log.Printf("[Game] game over at wave %d, tick %d", g.State.Wave.Number, g.State.Tick)
	g.dispatch(event.GameOver, g.State.Wave.Number)
}

func (g *Game) dispatch(eventType event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: eventType, Tick: g.State.Tick, Data: data})
}
