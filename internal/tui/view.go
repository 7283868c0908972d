// internal/tui/view.go
package tui

import (
	"fmt"
	"math"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // Terminal columns per tile
	mapTop    = 4 // Rows above the map reserved for the HUD
)

var (
	styleDefault  = tcell.StyleDefault
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleRock     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleEntry    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleExit     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var towerGlyphs = map[defs.TowerType]rune{
	defs.TowerBasic:      'B',
	defs.TowerSniper:     'S',
	defs.TowerCannon:     'C',
	defs.TowerRailcannon: 'R',
}

var towerColors = map[defs.TowerType]tcell.Color{
	defs.TowerBasic:      tcell.ColorRed,
	defs.TowerSniper:     tcell.ColorBlue,
	defs.TowerCannon:     tcell.ColorYellow,
	defs.TowerRailcannon: tcell.ColorPurple,
}

var enemyGlyphs = map[defs.EnemyType]rune{
	defs.EnemyGrunt: 'g',
	defs.EnemyFast:  'f',
	defs.EnemyTank:  'T',
}

// View draws snapshots onto a tcell screen.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// TileAt converts a terminal cell to the tile drawn there.
func TileAt(x, y int) gridmap.Point {
	return gridmap.Point{X: x / cellWidth, Y: y - mapTop}
}

// Frame is everything one Draw call shows.
type Frame struct {
	Snapshot app.Snapshot
	Cursor   gridmap.Point
	Status   string
	Flash    bool
}

func (v *View) Draw(f Frame) {
	v.screen.Clear()
	v.drawHUD(f)
	v.drawMap(f)
	v.screen.Show()
}

func (v *View) drawHUD(f Frame) {
	snap := f.Snapshot
	wave := "-"
	if snap.WaveNumber > 0 {
		wave = fmt.Sprint(snap.WaveNumber)
	}
	line := fmt.Sprintf("Wave %s  Money %d  Base %.0f/%.0f  %s x%d  queued %d",
		wave, snap.Money, snap.BaseHealth, snap.MaxBaseHealth, snap.Phase, snap.Speed, snap.Queued)
	v.text(0, 0, line, styleDefault)

	x := 0
	for i, t := range defs.TowerTypes {
		label := fmt.Sprintf("[%d] %s $%d", i+1, t, snap.Costs[t])
		style := styleDim
		if snap.Costs[t] <= snap.Money {
			style = styleDefault
		}
		if t == snap.SelectedType {
			style = styleSelected
		}
		v.text(x, 1, label, style)
		x += len(label) + 2
	}

	if s := snap.Selected; s != nil {
		t := s.Tower
		info := fmt.Sprintf("%s lvl %d  dmg %.2f  rng %.2f  reload %.0fms  dealt %.1f  upgrade $%d  sell $%d",
			t.Type, t.Level, t.Damage, t.Range, t.ReloadInterval, t.DamageDealt, s.UpgradeCost, s.SellValue)
		v.text(0, 2, info, styleDefault)
	}

	if f.Status != "" {
		style := styleDim
		if f.Flash {
			style = styleError
		}
		v.text(0, 3, f.Status, style)
	}
}

func (v *View) drawMap(f Frame) {
	snap := f.Snapshot
	grid := snap.Grid
	if grid == nil {
		return
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			var r rune
			var style tcell.Style
			switch grid.At(gridmap.Point{X: x, Y: y}) {
			case gridmap.Rock:
				r, style = '#', styleRock
			case gridmap.Path:
				r, style = '.', stylePath
			default:
				r, style = ' ', styleGround
			}
			v.tile(x, y, r, style)
		}
	}
	if len(snap.Path) > 0 {
		entry, exit := snap.Path[0], snap.Path[len(snap.Path)-1]
		v.tile(entry.X, entry.Y, 'E', styleEntry)
		v.tile(exit.X, exit.Y, 'X', styleExit)
	}

	for _, t := range snap.Towers {
		style := tcell.StyleDefault.Foreground(towerColors[t.Type]).Bold(true)
		if snap.Selected != nil && snap.Selected.Tower.ID == t.ID {
			style = styleSelected
		}
		v.tile(t.Position.X, t.Position.Y, towerGlyphs[t.Type], style)
	}

	for _, e := range snap.Enemies {
		p := enemyTile(e)
		v.tile(p.X, p.Y, enemyGlyphs[e.Type], enemyStyle(e))
	}

	if grid.Contains(f.Cursor) {
		x, y := f.Cursor.X*cellWidth, f.Cursor.Y+mapTop
		mainc, _, style, _ := v.screen.GetContent(x, y)
		v.screen.SetContent(x, y, mainc, nil, style.Reverse(true))
		v.screen.SetContent(x+1, y, ' ', nil, styleCursor)
	}
}

// enemyTile is the tile nearest to the enemy's continuous position.
func enemyTile(e component.Enemy) gridmap.Point {
	return gridmap.Point{X: int(math.Round(e.X)), Y: int(math.Round(e.Y))}
}

// enemyStyle fades from white to red as the enemy loses health.
func enemyStyle(e component.Enemy) tcell.Style {
	frac := 1.0
	if e.MaxHealth > 0 {
		frac = e.Health / e.MaxHealth
	}
	gb := int32(255 * frac)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, gb, gb)).Bold(true)
}

func (v *View) tile(x, y int, r rune, style tcell.Style) {
	v.screen.SetContent(x*cellWidth, y+mapTop, r, nil, style)
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
