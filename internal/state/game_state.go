// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/internal/ui"
	"grid-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var boundKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.KeyU, ebiten.KeyS, ebiten.KeyN, ebiten.KeySpace, ebiten.KeyP,
	ebiten.KeyF, ebiten.KeyR, ebiten.KeyEscape,
}

// GameState - состояние игры
type GameState struct {
	sm          *StateMachine
	game        *game.Game
	controller  *Controller
	effects     *effects
	renderer    *render.GridRenderer
	fontFace    font.Face
	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	waveLabel   *ui.WaveIndicator
	health      *ui.HealthIndicator
	palette     *ui.TowerPalette
	infoPanel   *ui.InfoPanel
	snapshot    game.Snapshot
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	face := basicfont.Face7x13

	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		RockColor:       config.RockColor,
		PathColor:       config.PathColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		TextLightColor:  config.TextLightColor,
	}
	overlay := render.OverlayColors{
		TowerStroke:   config.TowerStrokeColor,
		Selected:      config.SelectedColor,
		Range:         config.RangeColor,
		HealthBar:     config.HealthBarColor,
		HealthBarBack: config.HealthBarBack,
		Flash:         config.FlashColor,
	}

	gs := &GameState{
		sm:         sm,
		game:       g,
		controller: NewController(g),
		effects:    newEffects(g),
		renderer:   render.NewGridRenderer(config.TileSize, config.HUDHeight, mapColors, overlay, face),
		fontFace:   face,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.SpeedButtonY, config.SpeedButtonSize*0.8, config.RunningColor, config.PausedColor),
		waveLabel:   ui.NewWaveIndicator(config.ScreenWidth/2, 12),
		health:      ui.NewHealthIndicator(config.HealthBarX, 20, 200, 18),
		palette: ui.NewTowerPalette(config.PaletteX, config.PaletteY,
			config.PaletteButtonWidth, config.PaletteButtonHeight, config.PaletteSpacing, defs.TowerTypes),
		infoPanel: ui.NewInfoPanel(image.Rect(config.ScreenWidth-config.InfoPanelWidth, 50, config.ScreenWidth-10, config.HUDHeight-5), face),
	}
	g.EventDispatcher.SubscribeAll(gs.effects)
	return gs
}

func (g *GameState) Enter() {
	g.snapshot = g.game.Snapshot()
}

func (g *GameState) Update(deltaTime float64) {
	for _, k := range boundKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.controller.Key(k)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.controller.Click(g.renderer.ScreenToTile(x, y))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.ClearSelection()
	}

	g.game.Update()
	g.controller.Tick()
	g.effects.age()
	g.snapshot = g.game.Snapshot()

	g.speedButton.CurrentState = speedIndex(g.snapshot.Speed)
	if g.snapshot.Phase == component.Paused {
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

// handleUIClick обрабатывает клики по HUD. It reports whether the click
// landed on the HUD at all.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		if g.game.Phase() == component.GameOver {
			g.controller.result(g.game.Reset())
		} else {
			g.controller.result(g.controller.startOrPause())
		}
	case g.pauseButton.IsClicked(x, y):
		g.controller.result(g.game.TogglePause())
	case g.speedButton.IsClicked(x, y):
		g.speedButton.SetState(speedIndex(g.game.CycleSpeed()))
	case g.infoPanel.Contains(x, y):
		if g.infoPanel.UpgradeButton.IsClicked(x, y) {
			g.controller.Key(ebiten.KeyU)
		} else if g.infoPanel.SellButton.IsClicked(x, y) {
			g.controller.Key(ebiten.KeyS)
		}
	default:
		if towerType, ok := g.palette.TypeAt(x, y); ok {
			g.controller.result(g.game.SelectTowerType(towerType))
			return true
		}
		return y < config.HUDHeight
	}
	return true
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.snapshot
	if g.effects.mapDirty && snap.Grid != nil {
		g.renderer.RenderMapImage(snap.Grid, snap.Path)
		g.effects.mapDirty = false
	}

	screen.Fill(config.BackgroundColor)
	g.renderer.DrawMap(screen)

	cx, cy := ebiten.CursorPosition()
	if hover := g.renderer.ScreenToTile(cx, cy); snap.Grid != nil && snap.Grid.Contains(hover) {
		g.renderer.DrawHover(screen, hover, g.game.CanPlace(hover))
	}

	var selected types.EntityID
	if snap.Selected != nil {
		selected = snap.Selected.Tower.ID
	}
	g.renderer.DrawTowers(screen, snap.Towers, g.game.Balance, selected)
	g.renderer.DrawEnemies(screen, snap.Enemies, g.game.Balance, g.effects.hitSet())
	g.renderer.DrawShots(screen, g.effects.shots, shotLifetime)

	g.drawHUD(screen, cx, cy)
}

func (g *GameState) drawHUD(screen *ebiten.Image, cursorX, cursorY int) {
	snap := g.snapshot
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.PanelColor, false)
	if g.controller.Flashing() {
		vector.StrokeRect(screen, 1, 1, config.ScreenWidth-2, config.HUDHeight-2, 3, config.FlashColor, false)
	}

	g.indicator.Draw(screen, phaseColor(snap.Phase))
	g.pauseButton.SetPaused(snap.Phase == component.Paused)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
	g.waveLabel.Draw(screen, snap.WaveNumber, g.fontFace)
	g.health.Draw(screen, g.fontFace, snap.BaseHealth, snap.MaxBaseHealth, snap.Money)
	g.palette.Draw(screen, g.fontFace, g.game.Balance, snap.Costs, snap.Money, snap.SelectedType, cursorX, cursorY)

	g.infoPanel.SetTarget(snap.Selected)
	g.infoPanel.Draw(screen, cursorX, cursorY)

	status := fmt.Sprintf("%s  x%d  queued %d", snap.Phase, snap.Speed, snap.Queued)
	if err := g.controller.LastError(); err != nil && g.controller.Flashing() {
		status += "  " + err.Error()
	}
	text.Draw(screen, status, g.fontFace, config.HealthBarX+220, 60, config.TextLightColor)

	switch snap.Phase {
	case component.NotStarted:
		drawBanner(screen, g.fontFace, "Press Space to start", config.NotStartedColor)
	case component.GameOver:
		drawBanner(screen, g.fontFace, fmt.Sprintf("Game over at wave %d. Press R to restart", snap.WaveNumber), config.GameOverColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  tick %d", ebiten.ActualTPS(), snap.Tick), 10, config.HUDHeight-18)
}

func drawBanner(screen *ebiten.Image, face font.Face, label string, bg color.RGBA) {
	bounds := text.BoundString(face, label)
	w, h := bounds.Dx()+40, bounds.Dy()+20
	x := (config.ScreenWidth - w) / 2
	y := config.HUDHeight + (config.ScreenHeight-config.HUDHeight-h)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	text.Draw(screen, label, face, x+20, y+10-bounds.Min.Y, config.TextLightColor)
}

func phaseColor(phase component.Phase) color.RGBA {
	switch phase {
	case component.Running:
		return config.RunningColor
	case component.Paused:
		return config.PausedColor
	case component.GameOver:
		return config.GameOverColor
	default:
		return config.NotStartedColor
	}
}

func speedIndex(speed int) int {
	for i, s := range config.GameSpeeds {
		if s == speed {
			return i
		}
	}
	return 0
}

func (g *GameState) Exit() {}
