//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim := snake.New(cfg.Sim(), nil)
	game := app.New(sim, cfg)
	cc := sim.Config()
	log.Printf("snake %dx%d step=%gs seed=%d", cc.Width, cc.Height, cc.StepInterval, cc.Seed)

	ebiten.SetWindowTitle("snake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
