//go:build ebiten

package app

import (
	"log"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = []struct {
	keys []ebiten.Key
	dir  core.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.Right},
}

// Game adapts a snake simulation to the ebiten.Game interface.
type Game struct {
	sim     *snake.Game
	grid    *core.ByteGrid
	painter *render.GridPainter
	hud     *ui.HUD

	scale  int
	dt     float64
	paused bool
}

// New constructs a Game for the provided simulation.
func New(sim *snake.Game, cfg *Config) *Game {
	w, h := snake.DisplaySize(sim.Snapshot().Size)
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:     sim,
		grid:    core.NewByteGrid(w, h),
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(sim, cfg.HUD),
		scale:   scale,
		dt:      cfg.FrameDelta(),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.sim.Frozen() {
		g.paused = !g.paused
	}
	for _, binding := range directionKeys {
		for _, k := range binding.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.sim.HandleDirection(binding.dir)
			}
		}
	}
	if g.sim.Frozen() && (inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		g.sim.Restart()
		log.Printf("restart")
	}

	if !g.paused {
		ev := g.sim.Advance(g.dt)
		if ev.Has(snake.EventDied) {
			log.Printf("snake died at %v with length %d", g.sim.Head(), g.sim.Len()+1)
		}
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	snake.Rasterize(g.sim.Snapshot(), g.grid)
	g.painter.Blit(screen, g.grid.Cells(), snake.Palette(), g.scale)
	g.hud.Draw(screen, g.grid.W*g.scale, g.grid.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.W*g.scale + g.hud.Width(), g.grid.H * g.scale
}
