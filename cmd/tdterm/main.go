// cmd/tdterm/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "map and wave seed (0 picks one from the clock)")
	balancePath := flag.String("balance", "", "YAML file overriding tower and enemy balance")
	width := flag.Int("width", config.MapWidth, "map width in tiles")
	height := flag.Int("height", config.MapHeight, "map height in tiles")
	rocks := flag.Float64("rocks", config.RockProbability, "rock probability per tile")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy)")
	verbose := flag.Bool("v", false, "log every game event")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	balance := defs.DefaultBalance()
	if *balancePath != "" {
		var err error
		if balance, err = defs.LoadBalance(*balancePath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
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
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *verbose {
		g.EventDispatcher.SubscribeAll(&game.LogListener{})
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := tui.NewSession(screen, g)
	err = session.Run(ctx)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	snap := g.Snapshot()
	fmt.Printf("seed %d: reached wave %d, base %.0f, money %d\n", g.Rng.Seed(), snap.WaveNumber, snap.BaseHealth, snap.Money)
}
