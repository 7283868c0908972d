// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin   = 5
	lineHeight    = 16
	columnSpacing = 170
	buttonWidth   = 110
	buttonHeight  = 28
)

// InfoPanel shows the selected tower with its upgrade and sell buttons.
type InfoPanel struct {
	Rect          image.Rectangle
	UpgradeButton *Button
	SellButton    *Button
	fontFace      font.Face
	info          *app.TowerInfo
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(rect image.Rectangle, face font.Face) *InfoPanel {
	bx := rect.Max.X - buttonWidth - 10
	return &InfoPanel{
		Rect:          rect,
		UpgradeButton: NewButton(image.Rect(bx, rect.Min.Y+10, bx+buttonWidth, rect.Min.Y+10+buttonHeight), "Upgrade (U)"),
		SellButton:    NewButton(image.Rect(bx, rect.Min.Y+20+buttonHeight, bx+buttonWidth, rect.Min.Y+20+2*buttonHeight), "Sell (S)"),
		fontFace:      face,
	}
}

// SetTarget points the panel at the selected tower; nil hides it.
func (p *InfoPanel) SetTarget(info *app.TowerInfo) {
	p.info = info
	if info != nil {
		p.UpgradeButton.Disabled = !info.CanUpgrade
	}
}

func (p *InfoPanel) IsVisible() bool {
	return p.info != nil
}

// Contains reports whether the panel covers the point while visible.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible() && image.Pt(x, y).In(p.Rect)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	if p.info == nil {
		return
	}
	r := p.Rect
	bgColor := config.PanelColor
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, borderColor, true)

	p.drawTowerInfo(screen, r.Min.X+panelMargin+10, r.Min.Y+panelMargin+lineHeight)

	p.UpgradeButton.Text = fmt.Sprintf("Upgrade %d", p.info.UpgradeCost)
	p.SellButton.Text = fmt.Sprintf("Sell +%d", p.info.SellValue)
	p.UpgradeButton.Draw(screen, p.fontFace, cursorX, cursorY)
	p.SellButton.Draw(screen, p.fontFace, cursorX, cursorY)
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, startX, startY int) {
	t := p.info.Tower
	col1, col2 := startX, startX+columnSpacing
	y := startY

	title := fmt.Sprintf("%s  lvl %d  at %s", t.Type, t.Level, t.Position)
	text.Draw(screen, title, p.fontFace, col1, y, config.TextLightColor)
	y += lineHeight + 4

	lines := [][2]string{
		{fmt.Sprintf("Damage: %.2f", t.Damage), fmt.Sprintf("Range: %.2f", t.Range)},
		{fmt.Sprintf("Reload: %.0f ms", t.ReloadInterval), fmt.Sprintf("Shots: %d", t.Shots)},
		{fmt.Sprintf("Dealt: %.1f", t.DamageDealt), ""},
	}
	for _, line := range lines {
		text.Draw(screen, line[0], p.fontFace, col1, y, config.TextLightColor)
		text.Draw(screen, line[1], p.fontFace, col2, y, config.TextLightColor)
		y += lineHeight
	}
}
