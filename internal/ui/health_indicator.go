// internal/ui/health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"grid-tower-defense/internal/config"
	"grid-tower-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HealthIndicator отображает здоровье базы и деньги игрока.
type HealthIndicator struct {
	X, Y          float32
	Width, Height float32
}

func NewHealthIndicator(x, y, width, height float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, Width: width, Height: height}
}

// Fill is the filled fraction of the bar, clamped to [0, 1].
func (i *HealthIndicator) Fill(health, maxHealth float64) float32 {
	if maxHealth <= 0 {
		return 0
	}
	return float32(utils.Clamp(health/maxHealth, 0, 1))
}

func (i *HealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth float64, money int) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*i.Fill(health, maxHealth), i.Height, config.HealthBarColor, false)
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, color.White, false)

	label := fmt.Sprintf("Base %.0f/%.0f", health, maxHealth)
	drawCenteredAt(screen, label, face, int(i.X+i.Width/2), int(i.Y+i.Height/2))

	text.Draw(screen, fmt.Sprintf("Money: %d", money), face, int(i.X), int(i.Y+i.Height)+16, config.TextLightColor)
}

func drawCenteredAt(screen *ebiten.Image, label string, face font.Face, cx, cy int) {
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, cx-bounds.Dx()/2, cy+bounds.Dy()/2, config.TextLightColor)
}
