// cmd/tdsim/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/event"
)

// Result summarizes one headless run.
type Result struct {
	Ticks   uint64
	Wave    int
	Money   int
	Base    float64
	Towers  int
	Kills   int
	Escapes int
	Over    bool
}

func (r Result) String() string {
	outcome := "survived"
	if r.Over {
		outcome = "game over"
	}
	return fmt.Sprintf("%s after %d ticks: wave %d, base %.1f, money %d, towers %d, kills %d, escapes %d",
		outcome, r.Ticks, r.Wave, r.Base, r.Money, r.Towers, r.Kills, r.Escapes)
}

// simulate runs g for up to ticks ticks, letting the strategy act every
// `every` ticks. It stops early on game over.
func simulate(g *game.Game, ticks, every int, strategy Strategy) (Result, error) {
	var res Result
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { res.Kills++ }))
	g.EventDispatcher.Subscribe(event.EnemyEscaped, event.ListenerFunc(func(event.Event) { res.Escapes++ }))

	strategy(g)
	if err := g.StartGame(); err != nil {
		return res, err
	}
	for i := 0; i < ticks && g.Phase() == component.Running; i++ {
		if every > 0 && i%every == 0 {
			strategy(g)
		}
		g.Tick()
	}

	snap := g.Snapshot()
	res.Ticks = snap.Tick
	res.Wave = snap.WaveNumber
	res.Money = snap.Money
	res.Base = snap.BaseHealth
	res.Towers = len(snap.Towers)
	res.Over = snap.Phase == component.GameOver
	return res, nil
}

func strategyNames() string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	seed := flag.Int64("seed", 1, "map and wave seed")
	balancePath := flag.String("balance", "", "YAML file overriding tower and enemy balance")
	width := flag.Int("width", config.MapWidth, "map width in tiles")
	height := flag.Int("height", config.MapHeight, "map height in tiles")
	rocks := flag.Float64("rocks", config.RockProbability, "rock probability per tile")
	ticks := flag.Int("ticks", 60*config.TickRate, "ticks to simulate")
	place := flag.String("place", "greedy", "auto-place strategy: "+strategyNames())
	tower := flag.String("tower", defs.TowerBasic.String(), "tower type the strategy builds")
	every := flag.Int("every", config.TickRate, "ticks between strategy turns")
	verbose := flag.Bool("v", false, "log every game event")
	flag.Parse()

	strategy, ok := strategies[*place]
	if !ok {
		log.Fatalf("unknown strategy %q (have %s)", *place, strategyNames())
	}

	balance := defs.DefaultBalance()
	if *balancePath != "" {
		var err error
		if balance, err = defs.LoadBalance(*balancePath); err != nil {
			log.Fatal(err)
		}
	}

	g, err := game.NewGame(game.Options{
		Seed:            *seed,
		Width:           *width,
		Height:          *height,
		RockProbability: *rocks,
		Balance:         balance,
	})
	if err != nil {
		log.Fatal(err)
	}
	towerType, err := defs.ParseTowerType(*tower)
	if err != nil {
		log.Fatal(err)
	}
	if err := g.SelectTowerType(towerType); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		g.EventDispatcher.SubscribeAll(&game.LogListener{})
	}

	log.Printf("[Sim] seed %d, %dx%d map, path length %d, strategy %s/%s",
		g.Rng.Seed(), g.State.Grid.Width, g.State.Grid.Height, len(g.State.Path), *place, towerType)
	res, err := simulate(g, *ticks, *every, strategy)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[Sim] %s", res)
}
