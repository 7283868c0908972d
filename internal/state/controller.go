// internal/state/controller.go
package state

import (
	"errors"
	"log"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
)

// flashFrames is how long a rejected command keeps the HUD flashing.
const flashFrames = 20

// Controller turns keys and tile clicks into game commands. A rejected
// command starts a short flash; it never changes the game.
type Controller struct {
	game    *game.Game
	flash   int
	lastErr error
}

func NewController(g *game.Game) *Controller {
	return &Controller{game: g}
}

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Key applies the command bound to k. Unbound keys are ignored.
func (c *Controller) Key(k ebiten.Key) error {
	g := c.game
	for i, key := range towerKeys {
		if k == key && i < len(defs.TowerTypes) {
			return c.result(g.SelectTowerType(defs.TowerTypes[i]))
		}
	}

	switch k {
	case ebiten.KeyU:
		tower, ok := g.SelectedTower()
		if !ok {
			return c.result(errNoSelection)
		}
		_, err := g.UpgradeTower(tower.ID)
		return c.result(err)
	case ebiten.KeyS:
		tower, ok := g.SelectedTower()
		if !ok {
			return c.result(errNoSelection)
		}
		_, err := g.SellTower(tower.ID)
		return c.result(err)
	case ebiten.KeyN:
		return c.result(g.SkipToNextWave())
	case ebiten.KeySpace:
		return c.result(c.startOrPause())
	case ebiten.KeyP:
		return c.result(g.TogglePause())
	case ebiten.KeyF:
		g.CycleSpeed()
	case ebiten.KeyR:
		return c.result(g.Reset())
	case ebiten.KeyEscape:
		g.ClearSelection()
	}
	return nil
}

// Click handles a left click on a map tile: select the tower standing there,
// otherwise build the selected type.
func (c *Controller) Click(p gridmap.Point) error {
	if !c.game.State.Grid.Contains(p) {
		return nil
	}
	if c.game.SelectTower(p) {
		return nil
	}
	_, err := c.game.PlaceTower(p)
	return c.result(err)
}

// startOrPause starts a fresh game and toggles pause afterwards.
func (c *Controller) startOrPause() error {
	if c.game.Phase() == component.NotStarted {
		return c.game.StartGame()
	}
	return c.game.TogglePause()
}

var errNoSelection = errors.New("no tower selected")

func (c *Controller) result(err error) error {
	if err != nil {
		c.flash = flashFrames
		c.lastErr = err
		log.Printf("[Input] command rejected: %v", err)
	}
	return err
}

// Tick ages the failure flash by one frame.
func (c *Controller) Tick() {
	if c.flash > 0 {
		c.flash--
	}
}

// Flashing reports whether a recent command failed.
func (c *Controller) Flashing() bool {
	return c.flash > 0
}

// LastError is the most recent rejection, kept after the flash ends.
func (c *Controller) LastError() error {
	return c.lastErr
}
