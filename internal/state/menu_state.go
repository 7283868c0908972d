// internal/state/menu_state.go
package state

import (
	"fmt"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"1-4   choose tower type",
	"click build / select tower",
	"U     upgrade selected tower",
	"S     sell selected tower",
	"N     start next wave now",
	"Space start / pause",
	"F     cycle speed x1 x2 x4",
	"R     new map",
	"",
	"Press Enter to continue",
}

// MenuState - стартовый экран с подсказкой по управлению
type MenuState struct {
	sm   *StateMachine
	game *game.Game
}

func NewMenuState(sm *StateMachine, g *game.Game) *MenuState {
	return &MenuState{sm: sm, game: g}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	title := fmt.Sprintf("Grid Tower Defense  (seed %d)", m.game.Rng.Seed())
	text.Draw(screen, title, face, 80, 100, config.TextLightColor)
	for i, line := range helpLines {
		text.Draw(screen, line, face, 80, 140+i*18, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
