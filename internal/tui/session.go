// internal/tui/session.go
package tui

import (
	"context"
	"errors"
	"log"
	"time"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
)

const (
	commandBuffer = 64
	flashFrames   = 30
)

var errNoSelection = errors.New("no tower selected")

// Command is one player action. Commands run on the session loop between
// ticks, never concurrently with the simulation.
type Command func(s *Session) error

// Session runs a game in a terminal. Input is read on its own goroutine and
// queued; the loop goroutine is the only writer to the game.
type Session struct {
	screen tcell.Screen
	game   *app.Game
	view   *View
	cmds   chan Command

	cursor gridmap.Point
	status string
	flash  int
}

func NewSession(screen tcell.Screen, g *app.Game) *Session {
	return &Session{
		screen: screen,
		game:   g,
		view:   NewView(screen),
		cmds:   make(chan Command, commandBuffer),
		status: "Space to start, 1-4 tower type, Enter build, q quit",
	}
}

// Run drives the game at the tick rate until ctx is cancelled or the player quits.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.screen.EnableMouse()
	go s.pollEvents(ctx, cancel)

	ticker := time.NewTicker(time.Second / config.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step drains queued commands, advances one frame and redraws.
func (s *Session) Step() {
	s.drain()
	s.game.Update()
	if s.flash > 0 {
		s.flash--
	}
	s.view.Draw(Frame{
		Snapshot: s.game.Snapshot(),
		Cursor:   s.cursor,
		Status:   s.status,
		Flash:    s.flash > 0,
	})
}

func (s *Session) drain() {
	for {
		select {
		case cmd := <-s.cmds:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *Session) apply(cmd Command) {
	if err := cmd(s); err != nil {
		s.status = err.Error()
		s.flash = flashFrames
		log.Printf("[TUI] command rejected: %v", err)
	}
}

// Enqueue hands a command to the loop. It drops the command when the queue is full.
func (s *Session) Enqueue(cmd Command) bool {
	select {
	case s.cmds <- cmd:
		return true
	default:
		return false
	}
}

func (s *Session) pollEvents(ctx context.Context, quit context.CancelFunc) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		cmd, stop := Translate(ev)
		if stop {
			quit()
			return
		}
		if cmd == nil {
			continue
		}
		select {
		case s.cmds <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// Cursor returns the tile under the keyboard cursor.
func (s *Session) Cursor() gridmap.Point {
	return s.cursor
}

func (s *Session) moveCursor(dx, dy int) {
	next := s.cursor.Add(gridmap.Point{X: dx, Y: dy})
	if s.game.State.Grid.Contains(next) {
		s.cursor = next
	}
}

// activate selects the tower under the cursor or builds the selected type there.
func (s *Session) activate() error {
	if s.game.SelectTower(s.cursor) {
		return nil
	}
	tower, err := s.game.PlaceTower(s.cursor)
	if err != nil {
		return err
	}
	s.status = "built " + tower.Type.String() + " at " + tower.Position.String()
	return nil
}

func (s *Session) startOrPause() error {
	if s.game.Phase() == component.NotStarted {
		return s.game.StartGame()
	}
	return s.game.TogglePause()
}
