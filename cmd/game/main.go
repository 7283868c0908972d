// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "map and wave seed (0 picks one from the clock)")
	balancePath := flag.String("balance", "", "YAML file overriding tower and enemy balance")
	rocks := flag.Float64("rocks", config.RockProbability, "rock probability per tile")
	skipMenu := flag.Bool("skip-menu", false, "start on the map instead of the controls screen")
	verbose := flag.Bool("v", false, "log every game event")
	flag.Parse()

	balance := defs.DefaultBalance()
	if *balancePath != "" {
		var err error
		if balance, err = defs.LoadBalance(*balancePath); err != nil {
			log.Fatal(err)
		}
	}

	// The window is sized for the default map, so width and height are fixed here.
	g, err := game.NewGame(game.Options{
		Seed:            *seed,
		RockProbability: *rocks,
		Balance:         balance,
	})
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		g.EventDispatcher.SubscribeAll(&game.LogListener{})
	}
	log.Printf("[Main] seed %d, path length %d", g.Rng.Seed(), len(g.State.Path))

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, g))
	} else {
		sm.SetState(state.NewMenuState(sm, g))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.TickRate)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
