// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Shot is a tower-to-enemy line kept on screen for a few frames after firing.
type Shot struct {
	FromX, FromY float64 // Tile coordinates
	ToX, ToY     float64
	Age          int
}

// GridRenderer draws the tile map, towers, enemies and shots.
type GridRenderer struct {
	tileSize float64
	offsetY  float64
	colors   MapColors
	overlay  OverlayColors
	fontFace font.Face
	mapImage *ebiten.Image // Предрендеренная карта
}

func NewGridRenderer(tileSize, offsetY float64, colors MapColors, overlay OverlayColors, face font.Face) *GridRenderer {
	return &GridRenderer{
		tileSize: tileSize,
		offsetY:  offsetY,
		colors:   colors,
		overlay:  overlay,
		fontFace: face,
	}
}

// TileCenter returns the screen position of the center of a tile-space point.
func (r *GridRenderer) TileCenter(x, y float64) (float32, float32) {
	return float32((x + 0.5) * r.tileSize), float32((y+0.5)*r.tileSize + r.offsetY)
}

// ScreenToTile converts a cursor position to the tile under it. The result
// may lie outside the grid.
func (r *GridRenderer) ScreenToTile(x, y int) gridmap.Point {
	return gridmap.Point{
		X: int(math.Floor(float64(x) / r.tileSize)),
		Y: int(math.Floor((float64(y) - r.offsetY) / r.tileSize)),
	}
}

// RenderMapImage redraws the static background. Call it whenever the map is regenerated.
func (r *GridRenderer) RenderMapImage(grid *gridmap.Grid, path []gridmap.Point) {
	w := int(float64(grid.Width) * r.tileSize)
	h := int(float64(grid.Height) * r.tileSize)
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			var fill color.RGBA
			switch grid.At(gridmap.Point{X: x, Y: y}) {
			case gridmap.Rock:
				fill = r.colors.RockColor
			case gridmap.Path:
				fill = r.colors.PathColor
			default:
				fill = r.colors.GroundColor
			}
			r.drawTile(r.mapImage, x, y, fill)
		}
	}

	if len(path) > 0 {
		entry, exit := path[0], path[len(path)-1]
		r.drawTile(r.mapImage, entry.X, entry.Y, r.colors.EntryColor)
		r.drawTile(r.mapImage, exit.X, exit.Y, r.colors.ExitColor)
	}
}

func (r *GridRenderer) drawTile(target *ebiten.Image, x, y int, fill color.RGBA) {
	size := float32(r.tileSize)
	px, py := float32(x)*size, float32(y)*size
	vector.DrawFilledRect(target, px, py, size, size, fill, false)
	vector.StrokeRect(target, px, py, size, size, 1, LightenColor(fill, 20), false)
}

// DrawMap copies the pre-rendered background to the screen.
func (r *GridRenderer) DrawMap(screen *ebiten.Image) {
	if r.mapImage == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, r.offsetY)
	screen.DrawImage(r.mapImage, op)
}

// DrawHover outlines the tile under the cursor: selected color when a tower
// can be placed there, flash color otherwise.
func (r *GridRenderer) DrawHover(screen *ebiten.Image, p gridmap.Point, placeable bool) {
	clr := r.overlay.Flash
	if placeable {
		clr = r.overlay.Selected
	}
	size := float32(r.tileSize)
	vector.StrokeRect(screen, float32(p.X)*size, float32(p.Y)*size+float32(r.offsetY), size, size, 2, clr, false)
}

// DrawTowers draws every tower in its type color. The selected tower also
// gets its range circle.
func (r *GridRenderer) DrawTowers(screen *ebiten.Image, towers []component.Tower, balance *defs.Balance, selected types.EntityID) {
	radius := float32(r.tileSize * config.TowerRadiusFactor)
	for _, t := range towers {
		cx, cy := r.TileCenter(float64(t.Position.X), float64(t.Position.Y))
		fill := r.overlay.TowerStroke
		if def, ok := balance.Tower(t.Type); ok {
			fill = def.Color
		}

		stroke := r.overlay.TowerStroke
		if t.ID == selected {
			stroke = r.overlay.Selected
			vector.DrawFilledCircle(screen, cx, cy, float32(t.Range*r.tileSize), r.overlay.Range, true)
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
		vector.StrokeCircle(screen, cx, cy, radius, 2, stroke, true)

		if t.Level > 1 && r.fontFace != nil {
			label := fmt.Sprint(t.Level)
			bounds := text.BoundString(r.fontFace, label)
			text.Draw(screen, label, r.fontFace, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, DarkenColor(fill))
		}
	}
}

// DrawEnemies draws live enemies with a health bar above each. Enemies in
// hit flash instead of their type color.
func (r *GridRenderer) DrawEnemies(screen *ebiten.Image, enemies []component.Enemy, balance *defs.Balance, hit map[types.EntityID]bool) {
	radius := float32(r.tileSize * config.EnemyRadiusFactor)
	for _, e := range enemies {
		cx, cy := r.TileCenter(e.X, e.Y)
		fill := r.overlay.Flash
		if def, ok := balance.Enemy(e.Type); ok && !hit[e.ID] {
			fill = def.Color
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)

		barW := radius * 2
		barX := cx - radius
		barY := cy - radius - config.HealthBarHeight - 2
		vector.DrawFilledRect(screen, barX, barY, barW, config.HealthBarHeight, r.overlay.HealthBarBack, false)
		if e.MaxHealth > 0 {
			frac := float32(e.Health / e.MaxHealth)
			vector.DrawFilledRect(screen, barX, barY, barW*frac, config.HealthBarHeight, r.overlay.HealthBar, false)
		}
	}
}

// DrawShots draws fading tower-to-target lines.
func (r *GridRenderer) DrawShots(screen *ebiten.Image, shots []Shot, lifetime int) {
	for _, s := range shots {
		x0, y0 := r.TileCenter(s.FromX, s.FromY)
		x1, y1 := r.TileCenter(s.ToX, s.ToY)
		clr := r.overlay.Flash
		clr.A = uint8(255 * (lifetime - s.Age) / lifetime)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, clr, true)
	}
}
