// pkg/gridmap/generator.go
package gridmap

import (
	"errors"
	"fmt"
	"log"
)

// ErrMapGenerationFailed is returned when no connected map was produced
// within the retry budget.
var ErrMapGenerationFailed = errors.New("map generation failed")

// RandomSource is the subset of a PRNG the generator needs.
type RandomSource interface {
	Float64() float64
}

// GeneratorConfig controls procedural map generation.
type GeneratorConfig struct {
	Width           int
	Height          int
	RockProbability float64
	MaxAttempts     int
}

// Generate fills a fresh grid with rocks and carves the shortest entry-to-exit
// path into it. Each tile independently becomes a rock with RockProbability.
// When the exit is unreachable the grid is discarded and rolled again, up to
// MaxAttempts times.
func Generate(cfg GeneratorConfig, rng RandomSource) (*Grid, []Point, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, nil, fmt.Errorf("invalid map size %dx%d: %w", cfg.Width, cfg.Height, ErrMapGenerationFailed)
	}
	if cfg.RockProbability < 0 || cfg.RockProbability >= 1 {
		return nil, nil, fmt.Errorf("invalid rock probability %.3f: %w", cfg.RockProbability, ErrMapGenerationFailed)
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		grid := NewGrid(cfg.Width, cfg.Height)
		scatterRocks(grid, cfg.RockProbability, rng)

		path := FindPath(grid, grid.Entry(), grid.Exit())
		if path == nil {
			continue
		}
		for _, p := range path {
			grid.Tiles[p.Y*grid.Width+p.X] = Path
		}
		if attempt > 1 {
			log.Printf("[MapGenerator] connected map found after %d attempts", attempt)
		}
		return grid, path, nil
	}

	return nil, nil, fmt.Errorf("no path from entry to exit after %d attempts: %w", attempts, ErrMapGenerationFailed)
}

func scatterRocks(grid *Grid, probability float64, rng RandomSource) {
	for i := range grid.Tiles {
		if rng.Float64() < probability {
			grid.Tiles[i] = Rock
		} else {
			grid.Tiles[i] = Empty
		}
	}
}
