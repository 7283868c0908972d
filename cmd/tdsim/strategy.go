// cmd/tdsim/strategy.go
package main

import (
	"sort"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/internal/utils"
	"grid-tower-defense/pkg/gridmap"
)

// Strategy spends money on the game between ticks and returns how many
// commands succeeded.
type Strategy func(g *game.Game) int

var strategies = map[string]Strategy{
	"none":    func(*game.Game) int { return 0 },
	"greedy":  greedy,
	"upgrade": upgradeFirst,
}

// coverage counts path tiles within r of p.
func coverage(path []gridmap.Point, p gridmap.Point, r float64) int {
	n := 0
	for _, q := range path {
		if utils.Distance(float64(p.X), float64(p.Y), float64(q.X), float64(q.Y)) <= r {
			n++
		}
	}
	return n
}

// bestTiles ranks empty tiles by how much path a tower of the given range
// would cover. Ties keep row-major order.
func bestTiles(g *game.Game, r float64) []gridmap.Point {
	grid := g.State.Grid
	type scored struct {
		p     gridmap.Point
		score int
	}
	var candidates []scored
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := gridmap.Point{X: x, Y: y}
			if grid.At(p) != gridmap.Empty {
				continue
			}
			if score := coverage(g.State.Path, p, r); score > 0 {
				candidates = append(candidates, scored{p, score})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	out := make([]gridmap.Point, len(candidates))
	for i, c := range candidates {
		out[i] = c.p
	}
	return out
}

// greedy builds the selected type on the best free tiles while it can pay.
func greedy(g *game.Game) int {
	return placeBest(g, -1)
}

// placeBest builds up to limit towers; a negative limit means no cap.
func placeBest(g *game.Game, limit int) int {
	def, ok := g.Balance.Tower(g.SelectedType)
	if !ok {
		return 0
	}
	placed := 0
	for _, p := range bestTiles(g, def.Range) {
		if placed == limit || !g.CanPlace(p) {
			break
		}
		if _, err := g.PlaceTower(p); err != nil {
			break
		}
		placed++
	}
	return placed
}

// upgradeFirst keeps a small set of towers and pours money into upgrades.
func upgradeFirst(g *game.Game) int {
	const maxTowers = 3
	if free := maxTowers - len(g.State.Towers); free > 0 {
		if n := placeBest(g, free); n > 0 {
			return n
		}
	}
	upgraded := 0
	for {
		best, bestCost := types.EntityID(0), 0
		for _, t := range g.State.Towers {
			cost, err := g.UpgradeCost(t.ID)
			if err == nil && (best == 0 || cost < bestCost) {
				best, bestCost = t.ID, cost
			}
		}
		// Free upgrades would never stop.
		if best == 0 || bestCost <= 0 || bestCost > g.Economy.Money() {
			return upgraded
		}
		if _, err := g.UpgradeTower(best); err != nil {
			return upgraded
		}
		upgraded++
	}
}
