// internal/ui/tower_palette.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"grid-tower-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TowerPalette is the row of tower type buttons with their current prices.
type TowerPalette struct {
	buttons []*Button
	types   []defs.TowerType
}

// NewTowerPalette lays out one button per type starting at (x, y).
func NewTowerPalette(x, y, width, height, spacing int, towerTypes []defs.TowerType) *TowerPalette {
	p := &TowerPalette{types: towerTypes}
	for i, t := range towerTypes {
		left := x + i*(width+spacing)
		p.buttons = append(p.buttons, NewButton(image.Rect(left, y, left+width, y+height), t.String()))
	}
	return p
}

// TypeAt returns the tower type whose button covers the point.
func (p *TowerPalette) TypeAt(x, y int) (defs.TowerType, bool) {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			return p.types[i], true
		}
	}
	return 0, false
}

// Draw отрисовывает палитру. Unaffordable types are greyed out.
func (p *TowerPalette) Draw(screen *ebiten.Image, face font.Face, balance *defs.Balance, costs map[defs.TowerType]int, money int, selected defs.TowerType, cursorX, cursorY int) {
	for i, b := range p.buttons {
		t := p.types[i]
		cost := costs[t]
		b.Text = fmt.Sprintf("%d %s  $%d", i+1, t, cost)
		b.Disabled = cost > money
		b.Draw(screen, face, cursorX, cursorY)

		r := b.Rect
		if def, ok := balance.Tower(t); ok {
			vector.DrawFilledCircle(screen, float32(r.Min.X+10), float32(r.Min.Y+10), 5, def.Color, true)
		}
		if t == selected {
			vector.StrokeRect(screen, float32(r.Min.X-2), float32(r.Min.Y-2), float32(r.Dx()+4), float32(r.Dy()+4), 2, color.RGBA{255, 255, 0, 255}, false)
		}
	}
}
