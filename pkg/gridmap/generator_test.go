package gridmap

import (
	"errors"
	"math/rand"
	"testing"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestGenerateConnectivity(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid, path, err := Generate(GeneratorConfig{Width: 50, Height: 30, RockProbability: 0.2, MaxAttempts: 1000}, rng)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if path[0] != (Point{0, 0}) {
			t.Fatalf("seed %d: path starts at %v", seed, path[0])
		}
		if last := path[len(path)-1]; last != (Point{49, 29}) {
			t.Fatalf("seed %d: path ends at %v", seed, last)
		}
		if !IsConnected(grid, path) {
			t.Fatalf("seed %d: path is not connected", seed)
		}
		if got := grid.Count(Path); got != len(path) {
			t.Fatalf("seed %d: %d path tiles on grid, path has %d", seed, got, len(path))
		}
		for _, p := range path {
			if grid.At(p) != Path {
				t.Fatalf("seed %d: tile %v on path is %v", seed, p, grid.At(p))
			}
		}
	}
}

func TestGenerateNoRocks(t *testing.T) {
	grid, path, err := Generate(GeneratorConfig{Width: 5, Height: 4, RockProbability: 0, MaxAttempts: 1}, constSource(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grid.Count(Rock) != 0 {
		t.Errorf("expected no rocks, got %d", grid.Count(Rock))
	}
	if len(path) != 8 {
		t.Errorf("expected 8-tile path, got %d", len(path))
	}
}

func TestGenerateExhaustion(t *testing.T) {
	_, _, err := Generate(GeneratorConfig{Width: 10, Height: 10, RockProbability: 0.5, MaxAttempts: 3}, constSource(0))
	if !errors.Is(err, ErrMapGenerationFailed) {
		t.Fatalf("expected ErrMapGenerationFailed, got %v", err)
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  GeneratorConfig
	}{
		{"zero width", GeneratorConfig{Width: 0, Height: 5, RockProbability: 0.2, MaxAttempts: 1}},
		{"negative probability", GeneratorConfig{Width: 5, Height: 5, RockProbability: -0.1, MaxAttempts: 1}},
		{"probability one", GeneratorConfig{Width: 5, Height: 5, RockProbability: 1, MaxAttempts: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Generate(tt.cfg, constSource(0.9)); !errors.Is(err, ErrMapGenerationFailed) {
				t.Fatalf("expected ErrMapGenerationFailed, got %v", err)
			}
		})
	}
}
