// internal/state/pause_state.go
package state

import (
	"image/color"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState draws the frozen game under a dim overlay. The simulation does
// not tick while it is active.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	gs := s.previousState
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if gs.pauseButton.IsClicked(x, y) || gs.indicator.IsClicked(x, y) {
			unpause = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.controller.Key(ebiten.KeyR)
		s.stateMachine.SetState(gs)
		return
	}
	gs.controller.Tick()

	if unpause {
		gs.controller.result(gs.game.TogglePause())
	}
	if gs.game.Phase() != component.Paused {
		s.stateMachine.SetState(gs)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, config.HUDHeight, config.ScreenWidth, config.ScreenHeight-config.HUDHeight, color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	face := s.previousState.fontFace
	bounds := text.BoundString(face, pauseText)
	text.Draw(screen, pauseText, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
