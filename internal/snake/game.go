// Package snake implements the simulation core of a grid snake game.
//
// A Game is a pure state machine: the caller feeds it requested directions and
// elapsed frame time, and reads back cell coordinates to draw. It is owned by a
// single driving loop and performs no locking.
package snake

import (
	"slices"

	"gridsnake/internal/core"
)

// Event reports what happened during a call to Advance.
type Event uint8

const (
	// EventAte is set when the head was on the apple and the snake grew.
	EventAte Event = 1 << iota
	// EventMoved is set when the step interval elapsed and the snake moved.
	EventMoved
	// EventDied is set when the move ran into the body or a wall.
	EventDied
)

// Has reports whether all bits of flag are set.
func (e Event) Has(flag Event) bool { return e&flag == flag }

// Game owns the snake, the apple and the frozen flag.
type Game struct {
	cfg  Config
	size core.Size
	src  core.CellSource

	head    core.Cell
	body    []core.Cell // neck first, tail last
	dir     core.Direction
	elapsed float64

	apple  core.Cell
	frozen bool
}

// New builds a Game in its initial running state. A nil src selects an RNG
// seeded from cfg.Seed.
func New(cfg Config, src core.CellSource) *Game {
	cfg = cfg.normalized()
	if src == nil {
		src = core.NewTimeRNG(cfg.Seed)
	}
	g := &Game{cfg: cfg, size: cfg.Size(), src: src}
	g.Restart()
	return g
}

// HandleDirection turns the snake unless requested would reverse it onto its
// own neck, in which case the request is ignored.
func (g *Game) HandleDirection(requested core.Direction) {
	if requested == g.dir.Opposite() {
		return
	}
	g.dir = requested
}

// Advance moves the simulation forward by dt seconds. The eating check runs on
// every call; movement happens once the accumulated time exceeds the step
// interval. A frozen game ignores Advance until Restart.
func (g *Game) Advance(dt float64) Event {
	if g.frozen {
		return 0
	}
	var ev Event
	if g.head == g.apple {
		g.grow()
		g.apple = g.src.Cell(g.size.W, g.size.H)
		ev |= EventAte
	}

	g.elapsed += dt
	if g.elapsed > g.cfg.StepInterval {
		g.elapsed = 0
		ev |= EventMoved
		if !g.step() {
			g.frozen = true
			ev |= EventDied
		}
	}
	return ev
}

// grow inserts a segment at the head's position without dropping the tail.
func (g *Game) grow() {
	g.body = slices.Insert(g.body, 0, g.head)
}

// step shifts the body one historical head position, moves the head and
// reports whether the snake survived.
func (g *Game) step() bool {
	if n := len(g.body); n > 0 {
		g.body = g.body[:n-1]
	}
	g.body = slices.Insert(g.body, 0, g.head)
	g.head = g.head.Step(g.dir)

	if slices.Contains(g.body, g.head) {
		return false
	}
	return g.size.Inside(g.head)
}

// Restart returns every field to its post-construction value. The grid
// configuration and the random source are kept.
func (g *Game) Restart() {
	g.head = g.cfg.Start
	g.body = g.body[:0]
	g.dir = core.Right
	g.elapsed = 0
	g.apple = g.cfg.AppleStart
	g.frozen = false
}

// Head returns the head cell.
func (g *Game) Head() core.Cell { return g.head }

// Body returns a copy of the body cells, neck first.
func (g *Game) Body() []core.Cell { return slices.Clone(g.body) }

// Len returns the number of body segments, excluding the head.
func (g *Game) Len() int { return len(g.body) }

// Apple returns the apple cell.
func (g *Game) Apple() core.Cell { return g.apple }

// Direction returns the current movement direction.
func (g *Game) Direction() core.Direction { return g.dir }

// Elapsed returns the seconds accumulated since the last movement step.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Frozen reports whether the game is over and waiting for Restart.
func (g *Game) Frozen() bool { return g.frozen }

// Config returns the normalized configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Snapshot is a value copy of everything a renderer needs.
type Snapshot struct {
	Size      core.Size
	Head      core.Cell
	Body      []core.Cell
	Apple     core.Cell
	Direction core.Direction
	Frozen    bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Size:      g.size,
		Head:      g.head,
		Body:      g.Body(),
		Apple:     g.apple,
		Direction: g.dir,
		Frozen:    g.frozen,
	}
}
