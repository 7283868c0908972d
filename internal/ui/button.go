// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{60, 60, 75, 255},
		HoverColor: color.RGBA{90, 90, 110, 255},
	}
}

// Contains reports whether the screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked is Contains for enabled buttons.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Disabled {
		bg = color.RGBA{40, 40, 40, 255}
	} else if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{120, 120, 140, 255}, false)

	drawCentered(screen, b.Text, face, b.Rect, b.TextColor)
}

// drawCentered draws a possibly multi-line label centered in rect.
func drawCentered(screen *ebiten.Image, label string, face font.Face, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, label)
	tx := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	ty := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, label, face, tx, ty, clr)
}
