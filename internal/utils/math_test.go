package utils

import "testing"

func TestFloorCost(t *testing.T) {
	tests := []struct {
		base     float64
		expected int
	}{
		{15, 15},
		{15 * 1.4, 21},
		{15 * 1.4 * 1.4, 29},
		{20 * 1.5 * 1.5 * 1.5, 67},
		{0.999, 0},
	}
	for _, tt := range tests {
		if got := FloorCost(tt.base); got != tt.expected {
			t.Errorf("FloorCost(%v) = %d, want %d", tt.base, got, tt.expected)
		}
	}
}

func TestCeilPow(t *testing.T) {
	tests := []struct {
		wave     float64
		expected int
	}{
		{1, 1},
		{2, 3}, // 2.46
		{3, 5}, // 4.17
		{4, 7}, // 6.06
		{10, 20},
	}
	for _, tt := range tests {
		if got := CeilPow(tt.wave, 1.3); got != tt.expected {
			t.Errorf("CeilPow(%v, 1.3) = %d, want %d", tt.wave, got, tt.expected)
		}
	}
}

func TestCeilSqrt(t *testing.T) {
	expected := map[int]int{0: 0, 1: 1, 2: 2, 4: 2, 5: 3, 9: 3, 10: 4}
	for n, want := range expected {
		if got := CeilSqrt(n); got != want {
			t.Errorf("CeilSqrt(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestMillisToTicks(t *testing.T) {
	tests := []struct {
		ms       float64
		expected int
	}{
		{1000, 60},
		{800, 48},
		{640, 39}, // 38.4
		{3000, 180},
		{1, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := MillisToTicks(tt.ms, 60); got != tt.expected {
			t.Errorf("MillisToTicks(%v) = %d, want %d", tt.ms, got, tt.expected)
		}
	}
}

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
	if a.Seed() != 42 {
		t.Errorf("unexpected seed %d", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed should be replaced")
	}
}
