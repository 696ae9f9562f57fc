package main

import (
	"flag"
	"io"
	"log"
	"os"

	"gridsnake/internal/snake"
	"gridsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := term.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns stdout/stderr while running, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if cfg.Log != "" {
		f, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	sound := term.Silent()
	if cfg.Sound {
		if s, err := term.NewBeeper(); err != nil {
			logger.Printf("audio initialization failed: %v", err)
		} else {
			sound = s
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	sim := snake.New(cfg.Sim(), nil)
	cc := sim.Config()
	logger.Printf("snake %dx%d step=%gs seed=%d", cc.Width, cc.Height, cc.StepInterval, cc.Seed)

	err = term.New(screen, sim, sound, logger).Run(cfg.FrameInterval())
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
