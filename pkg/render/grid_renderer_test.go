package render

import (
	"testing"

	"grid-tower-defense/pkg/gridmap"
)

func TestScreenToTile(t *testing.T) {
	r := NewGridRenderer(24, 150, MapColors{}, OverlayColors{}, nil)
	tests := []struct {
		x, y int
		want gridmap.Point
	}{
		{0, 150, gridmap.Point{X: 0, Y: 0}},
		{23, 173, gridmap.Point{X: 0, Y: 0}},
		{24, 174, gridmap.Point{X: 1, Y: 1}},
		{100, 10, gridmap.Point{X: 4, Y: -6}},
	}
	for _, tt := range tests {
		if got := r.ScreenToTile(tt.x, tt.y); got != tt.want {
			t.Errorf("ScreenToTile(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTileCenter(t *testing.T) {
	r := NewGridRenderer(24, 150, MapColors{}, OverlayColors{}, nil)
	x, y := r.TileCenter(2, 1)
	if x != 60 || y != 186 {
		t.Errorf("TileCenter(2, 1) = (%v, %v), want (60, 186)", x, y)
	}
	// Enemy positions are fractional tile coordinates.
	x, y = r.TileCenter(0.5, 0)
	if x != 24 || y != 162 {
		t.Errorf("TileCenter(0.5, 0) = (%v, %v), want (24, 162)", x, y)
	}
	if p := r.ScreenToTile(int(x), int(y)); p != (gridmap.Point{X: 1, Y: 0}) {
		t.Errorf("round trip landed on %v", p)
	}
}
