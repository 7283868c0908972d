// internal/tui/keys.go
package tui

import (
	"fmt"

	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
)

// Translate maps a terminal event to a command. The second result is true
// when the player asked to quit.
func Translate(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return KeyCommand(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return nil, false
		}
		x, y := ev.Position()
		return clickCommand(TileAt(x, y)), false
	case *tcell.EventResize:
		return func(s *Session) error {
			s.screen.Sync()
			return nil
		}, false
	}
	return nil, false
}

// KeyCommand maps one key press.
func KeyCommand(key tcell.Key, r rune) (Command, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyUp:
		return move(0, -1), false
	case tcell.KeyDown:
		return move(0, 1), false
	case tcell.KeyLeft:
		return move(-1, 0), false
	case tcell.KeyRight:
		return move(1, 0), false
	case tcell.KeyEnter:
		return (*Session).activate, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	if r >= '1' && r <= '9' {
		i := int(r - '1')
		if i < len(defs.TowerTypes) {
			towerType := defs.TowerTypes[i]
			return func(s *Session) error {
				return s.game.SelectTowerType(towerType)
			}, false
		}
		return nil, false
	}

	switch r {
	case 'q':
		return nil, true
	case 'k':
		return move(0, -1), false
	case 'j':
		return move(0, 1), false
	case 'h':
		return move(-1, 0), false
	case 'l':
		return move(1, 0), false
	case ' ':
		return (*Session).startOrPause, false
	case 'p':
		return func(s *Session) error { return s.game.TogglePause() }, false
	case 'u':
		return func(s *Session) error {
			tower, ok := s.game.SelectedTower()
			if !ok {
				return errNoSelection
			}
			_, err := s.game.UpgradeTower(tower.ID)
			return err
		}, false
	case 's':
		return func(s *Session) error {
			tower, ok := s.game.SelectedTower()
			if !ok {
				return errNoSelection
			}
			refund, err := s.game.SellTower(tower.ID)
			if err == nil {
				s.status = fmt.Sprintf("sold for %d", refund)
			}
			return err
		}, false
	case 'n':
		return func(s *Session) error { return s.game.SkipToNextWave() }, false
	case 'f':
		return func(s *Session) error {
			s.status = fmt.Sprintf("speed x%d", s.game.CycleSpeed())
			return nil
		}, false
	case 'r':
		return func(s *Session) error {
			s.cursor = gridmap.Point{}
			return s.game.Reset()
		}, false
	}
	return nil, false
}

func move(dx, dy int) Command {
	return func(s *Session) error {
		s.moveCursor(dx, dy)
		return nil
	}
}

func clickCommand(p gridmap.Point) Command {
	return func(s *Session) error {
		if !s.game.State.Grid.Contains(p) {
			return nil
		}
		s.cursor = p
		return s.activate()
	}
}
