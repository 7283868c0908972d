// pkg/gridmap/grid.go
package gridmap

import (
	"errors"
	"fmt"

	"grid-tower-defense/pkg/utils"
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("point out of bounds")

// TileKind is the content of a single grid cell.
type TileKind uint8

const (
	Empty TileKind = iota
	Rock
	Path
	Tower
)

func (k TileKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Rock:
		return "rock"
	case Path:
		return "path"
	case Tower:
		return "tower"
	default:
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
}

// Passable reports whether enemies (and the path finder) may cross the tile.
func (k TileKind) Passable() bool {
	return k != Rock
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// NeighborDirections lists the 4-adjacent offsets in the order the path finder
// expands them: +x, -x, +y, -y. Shortest-path ties are decided by this order.
var NeighborDirections = []Point{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
}

// Add returns the sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Manhattan returns the 4-adjacency distance between two points.
func (p Point) Manhattan(o Point) int {
	return utils.Abs(p.X-o.X) + utils.Abs(p.Y-o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a width × height matrix of tiles stored row-major.
type Grid struct {
	Width  int
	Height int
	Tiles  []TileKind
}

// NewGrid creates a grid filled with Empty tiles.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]TileKind, width*height),
	}
}

// Entry is the tile where enemies enter the map.
func (g *Grid) Entry() Point {
	return Point{X: 0, Y: 0}
}

// Exit is the tile enemies walk toward.
func (g *Grid) Exit() Point {
	return Point{X: g.Width - 1, Y: g.Height - 1}
}

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p. Points outside the grid read as Rock.
func (g *Grid) At(p Point) TileKind {
	if !g.Contains(p) {
		return Rock
	}
	return g.Tiles[p.Y*g.Width+p.X]
}

// Set overwrites the tile at p.
func (g *Grid) Set(p Point, kind TileKind) error {
	if !g.Contains(p) {
		return fmt.Errorf("set %s on %dx%d grid: %w", p, g.Width, g.Height, ErrOutOfBounds)
	}
	g.Tiles[p.Y*g.Width+p.X] = kind
	return nil
}

// IsPassable reports whether p is inside the grid and not a rock.
func (g *Grid) IsPassable(p Point) bool {
	return g.Contains(p) && g.At(p).Passable()
}

// Neighbors returns the in-bounds 4-adjacent points of p in NeighborDirections order.
func (g *Grid) Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		n := p.Add(d)
		if g.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.Tiles {
		if t == kind {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]TileKind, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{Width: g.Width, Height: g.Height, Tiles: tiles}
}
