// Package term draws a snake game in a terminal with tcell and feeds it
// keyboard input and measured frame times.
package term

import (
	"fmt"
	"io"
	"log"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

// cellWidth is the number of terminal columns per grid cell, which keeps
// cells roughly square.
const cellWidth = 2

var displayStyles = []tcell.Style{
	snake.DisplayEmpty: tcell.StyleDefault,
	snake.DisplayWall:  tcell.StyleDefault.Background(tcell.ColorGray),
	snake.DisplayBody:  tcell.StyleDefault.Background(tcell.ColorGreen),
	snake.DisplayHead:  tcell.StyleDefault.Background(tcell.ColorLime),
	snake.DisplayApple: tcell.StyleDefault.Background(tcell.ColorRed),
	snake.DisplayCrash: tcell.StyleDefault.Background(tcell.ColorYellow),
}

// UI owns the screen and the game for the lifetime of a terminal session.
// All game access happens on the goroutine running Run.
type UI struct {
	screen tcell.Screen
	sim    *snake.Game
	grid   *core.ByteGrid
	clock  *core.FrameClock
	sound  Sound
	log    *log.Logger

	paused bool
}

// New wires a UI to an initialised screen. sound and logger may be nil.
func New(screen tcell.Screen, sim *snake.Game, sound Sound, logger *log.Logger) *UI {
	if sound == nil {
		sound = Silent()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &UI{
		screen: screen,
		sim:    sim,
		grid:   core.NewByteGrid(snake.DisplaySize(sim.Snapshot().Size)),
		clock:  core.NewFrameClock(250 * time.Millisecond),
		sound:  sound,
		log:    logger,
	}
}

// Run redraws every interval and handles input until the player quits.
func (u *UI) Run(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	u.clock.Reset()
	u.Frame(u.clock.Tick())
	for {
		select {
		case ev, ok := <-events:
			if !ok || !u.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			u.Frame(u.clock.Tick())
		}
	}
}

// HandleEvent applies a terminal event and reports whether to keep running.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *UI) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		u.sim.HandleDirection(core.Up)
	case tcell.KeyDown:
		u.sim.HandleDirection(core.Down)
	case tcell.KeyLeft:
		u.sim.HandleDirection(core.Left)
	case tcell.KeyRight:
		u.sim.HandleDirection(core.Right)
	case tcell.KeyEnter:
		u.restart()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'w':
			u.sim.HandleDirection(core.Up)
		case 's':
			u.sim.HandleDirection(core.Down)
		case 'a':
			u.sim.HandleDirection(core.Left)
		case 'd':
			u.sim.HandleDirection(core.Right)
		case 'r':
			u.restart()
		case ' ':
			if !u.sim.Frozen() {
				u.paused = !u.paused
			}
		}
	}
	return true
}

// restart is honoured only once the game is over.
func (u *UI) restart() {
	if !u.sim.Frozen() {
		return
	}
	u.sim.Restart()
	u.log.Printf("restart")
}

// Frame advances the game by dt seconds unless paused, then redraws.
func (u *UI) Frame(dt float64) {
	if !u.paused {
		ev := u.sim.Advance(dt)
		if ev.Has(snake.EventAte) {
			u.sound.Eat()
			u.log.Printf("ate apple, length %d", u.sim.Len()+1)
		}
		if ev.Has(snake.EventDied) {
			u.sound.Die()
			u.log.Printf("died at %v, length %d", u.sim.Head(), u.sim.Len()+1)
		}
	}
	u.draw()
}

func (u *UI) draw() {
	u.screen.Clear()
	snap := u.sim.Snapshot()
	snake.Rasterize(snap, u.grid)
	for y := 0; y < u.grid.H; y++ {
		for x := 0; x < u.grid.W; x++ {
			style := displayStyles[u.grid.At(x, y)]
			for i := 0; i < cellWidth; i++ {
				u.screen.SetContent(x*cellWidth+i, y, ' ', nil, style)
			}
		}
	}

	status := fmt.Sprintf("length %d  arrows/wasd move  space pause  q quit", len(snap.Body)+1)
	switch {
	case snap.Frozen:
		status = fmt.Sprintf("game over at length %d  r restart  q quit", len(snap.Body)+1)
	case u.paused:
		status = "paused  space resume"
	}
	u.print(0, u.grid.H, status)
	u.screen.Show()
}

func (u *UI) print(x, y int, s string) {
	for i, r := range s {
		u.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
