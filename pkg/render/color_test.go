package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 51, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("DarkenColor = %v, want %v", got, want)
	}
}

func TestLightenColor(t *testing.T) {
	tests := []struct {
		in     color.RGBA
		amount int
		want   color.RGBA
	}{
		{color.RGBA{10, 20, 30, 255}, 40, color.RGBA{50, 60, 70, 255}},
		{color.RGBA{230, 250, 0, 128}, 40, color.RGBA{255, 255, 40, 128}},
	}
	for _, tt := range tests {
		if got := LightenColor(tt.in, tt.amount); got != tt.want {
			t.Errorf("LightenColor(%v, %d) = %v, want %v", tt.in, tt.amount, got, tt.want)
		}
	}
}
