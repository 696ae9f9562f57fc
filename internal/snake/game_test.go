package snake

import (
	"slices"
	"testing"

	"gridsnake/internal/core"
)

// scripted hands out cells in order and repeats the last one.
type scripted struct {
	cells []core.Cell
	calls int
}

func (s *scripted) Cell(w, h int) core.Cell {
	i := min(s.calls, len(s.cells)-1)
	s.calls++
	return s.cells[i]
}

func fixed(cells ...core.Cell) *scripted { return &scripted{cells: cells} }

func cells(xy ...int) []core.Cell {
	out := make([]core.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Cell{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func assertBody(t *testing.T, g *Game, want []core.Cell) {
	t.Helper()
	if got := g.Body(); !slices.Equal(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
}

func TestNewInitialState(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))
	if g.Head() != (core.Cell{X: 3, Y: 3}) {
		t.Fatalf("head = %v, want (3,3)", g.Head())
	}
	if g.Len() != 0 {
		t.Fatalf("body should start empty, got %v", g.Body())
	}
	if g.Direction() != core.Right {
		t.Fatalf("direction = %v, want right", g.Direction())
	}
	if g.Apple() != (core.Cell{X: 10, Y: 10}) {
		t.Fatalf("apple = %v, want (10,10)", g.Apple())
	}
	if g.Frozen() || g.Elapsed() != 0 {
		t.Fatalf("fresh game frozen=%v elapsed=%v", g.Frozen(), g.Elapsed())
	}
}

func TestHandleDirectionIgnoresReversal(t *testing.T) {
	for _, d := range core.Directions {
		g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))
		g.dir = d

		g.HandleDirection(d.Opposite())
		if g.Direction() != d {
			t.Fatalf("reversal from %v accepted, now %v", d, g.Direction())
		}
		g.HandleDirection(d)
		if g.Direction() != d {
			t.Fatalf("repeating %v changed direction to %v", d, g.Direction())
		}
		for _, turn := range core.Directions {
			if turn == d || turn == d.Opposite() {
				continue
			}
			g.dir = d
			g.HandleDirection(turn)
			if g.Direction() != turn {
				t.Fatalf("turn %v -> %v rejected", d, turn)
			}
		}
	}
}

func TestHandleDirectionWhileFrozen(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))
	g.frozen = true
	g.HandleDirection(core.Up)
	if g.Direction() != core.Up {
		t.Fatalf("direction = %v, want up", g.Direction())
	}
	if ev := g.Advance(1); ev != 0 {
		t.Fatalf("frozen Advance reported %v", ev)
	}
	if g.Head() != (core.Cell{X: 3, Y: 3}) {
		t.Fatalf("frozen game moved to %v", g.Head())
	}
}

func TestStepPacing(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))

	for i := 0; i < 10; i++ {
		if ev := g.Advance(0.007); ev.Has(EventMoved) {
			t.Fatalf("moved after %d small ticks", i+1)
		}
	}
	if g.Head() != (core.Cell{X: 3, Y: 3}) {
		t.Fatalf("head moved below the interval: %v", g.Head())
	}

	g.Restart()
	g.Advance(0.04)
	if ev := g.Advance(0.04); ev.Has(EventMoved) {
		t.Fatal("reaching the interval exactly must not step")
	}
	if ev := g.Advance(0.001); !ev.Has(EventMoved) {
		t.Fatal("crossing the interval must step")
	}
	if g.Head() != (core.Cell{X: 4, Y: 3}) {
		t.Fatalf("head = %v, want (4,3)", g.Head())
	}
	if g.Elapsed() != 0 {
		t.Fatalf("elapsed = %v after step, want 0", g.Elapsed())
	}
}

func TestLargeDtStepsOnceAndResets(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))
	g.Advance(0.5)
	if g.Head() != (core.Cell{X: 4, Y: 3}) {
		t.Fatalf("head = %v, want a single step to (4,3)", g.Head())
	}
	if g.Elapsed() != 0 {
		t.Fatalf("leftover time carried over: %v", g.Elapsed())
	}
	if ev := g.Advance(0.05); ev.Has(EventMoved) {
		t.Fatal("stepped again before a full interval")
	}
}

func TestEatingIgnoresStepGate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AppleStart = cfg.Start
	g := New(cfg, fixed(core.Cell{X: 20, Y: 20}))

	ev := g.Advance(0)
	if !ev.Has(EventAte) || ev.Has(EventMoved) {
		t.Fatalf("event = %v, want ate without move", ev)
	}
	assertBody(t, g, cells(3, 3))
	if g.Head() != (core.Cell{X: 3, Y: 3}) {
		t.Fatalf("eating moved the head to %v", g.Head())
	}
	if g.Apple() != (core.Cell{X: 20, Y: 20}) {
		t.Fatalf("apple = %v, want relocated to (20,20)", g.Apple())
	}
}

func TestGrowthSurvivesNextStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AppleStart = core.Cell{X: 5, Y: 3}
	g := New(cfg, fixed(core.Cell{X: 20, Y: 20}))

	g.Advance(0.09)
	assertBody(t, g, cells(3, 3))
	g.Advance(0.09)
	assertBody(t, g, cells(4, 3))
	if g.Head() != cfg.AppleStart {
		t.Fatalf("head = %v, want on apple", g.Head())
	}

	if ev := g.Advance(0.01); !ev.Has(EventAte) {
		t.Fatalf("event = %v, want ate", ev)
	}
	assertBody(t, g, cells(5, 3, 4, 3))

	g.Advance(0.09)
	assertBody(t, g, cells(5, 3, 5, 3))
	if g.Head() != (core.Cell{X: 6, Y: 3}) || g.Frozen() {
		t.Fatalf("head = %v frozen=%v after growth step", g.Head(), g.Frozen())
	}

	g.Advance(0.09)
	assertBody(t, g, cells(6, 3, 5, 3))
}

func TestFirstStepFromEmptyBody(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))
	g.Advance(0.09)
	assertBody(t, g, cells(3, 3))
	g.Advance(0.09)
	assertBody(t, g, cells(4, 3))
}

func TestSelfCollisionFreezes(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))
	g.head = core.Cell{X: 5, Y: 5}
	g.body = cells(4, 5, 4, 4, 5, 4, 6, 4, 6, 5, 6, 6)

	ev := g.Advance(0.09)
	if !ev.Has(EventMoved | EventDied) {
		t.Fatalf("event = %v, want moved and died", ev)
	}
	if !g.Frozen() {
		t.Fatal("running into the body must freeze the game")
	}
	if g.Head() != (core.Cell{X: 6, Y: 5}) {
		t.Fatalf("head = %v, want (6,5)", g.Head())
	}

	before := g.Snapshot()
	g.Advance(1)
	if after := g.Snapshot(); after.Head != before.Head || !slices.Equal(after.Body, before.Body) {
		t.Fatal("frozen game kept moving")
	}
}

func TestMovingIntoVacatedTailIsSafe(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 1, Y: 1}))
	g.head = core.Cell{X: 5, Y: 5}
	g.body = cells(5, 6, 6, 6, 6, 5)

	g.Advance(0.09)
	if g.Frozen() {
		t.Fatal("tail cell is vacated before the collision check")
	}
	assertBody(t, g, cells(5, 5, 5, 6, 6, 6))
}

func TestWallCollision(t *testing.T) {
	cases := []struct {
		name  string
		start core.Cell
		dir   core.Direction
		want  core.Cell
	}{
		{"right", core.Cell{X: 5, Y: 2}, core.Right, core.Cell{X: 6, Y: 2}},
		{"left", core.Cell{X: 1, Y: 2}, core.Left, core.Cell{X: 0, Y: 2}},
		{"top", core.Cell{X: 2, Y: 1}, core.Up, core.Cell{X: 2, Y: 0}},
		{"bottom", core.Cell{X: 2, Y: 4}, core.Down, core.Cell{X: 2, Y: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Width: 5, Height: 4, StepInterval: 0.08, Start: tc.start, AppleStart: core.Cell{X: 3, Y: 3}}
			g := New(cfg, fixed(core.Cell{X: 1, Y: 1}))
			g.dir = tc.dir

			ev := g.Advance(0.09)
			if !ev.Has(EventDied) || !g.Frozen() {
				t.Fatalf("event = %v frozen=%v, want death", ev, g.Frozen())
			}
			if g.Head() != tc.want {
				t.Fatalf("head = %v, want %v", g.Head(), tc.want)
			}
		})
	}
}

func TestEdgeRowIsPlayable(t *testing.T) {
	cfg := Config{Width: 5, Height: 4, StepInterval: 0.08, Start: core.Cell{X: 1, Y: 4}, AppleStart: core.Cell{X: 3, Y: 2}}
	g := New(cfg, fixed(core.Cell{X: 1, Y: 1}))
	for i := 0; i < 4; i++ {
		g.Advance(0.09)
	}
	if g.Frozen() || g.Head() != (core.Cell{X: 5, Y: 4}) {
		t.Fatalf("head = %v frozen=%v, want alive on (5,4)", g.Head(), g.Frozen())
	}
}

func TestRestartRestoresInitialState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AppleStart = core.Cell{X: 4, Y: 3}
	g := New(cfg, fixed(core.Cell{X: 7, Y: 7}))
	fresh := g.Snapshot()

	g.Advance(0.09)
	g.Advance(0.01)
	g.HandleDirection(core.Up)
	for !g.Frozen() {
		g.Advance(0.09)
	}
	if g.Apple() == cfg.AppleStart {
		t.Fatal("apple should have been eaten and moved")
	}

	for i := 0; i < 2; i++ {
		g.Restart()
		snap := g.Snapshot()
		if snap.Head != fresh.Head || snap.Apple != fresh.Apple || snap.Direction != fresh.Direction || snap.Frozen {
			t.Fatalf("restart #%d: %+v, want %+v", i+1, snap, fresh)
		}
		if len(snap.Body) != 0 || g.Elapsed() != 0 {
			t.Fatalf("restart #%d left body %v elapsed %v", i+1, snap.Body, g.Elapsed())
		}
	}

	g.Advance(0.09)
	if g.Head() != (core.Cell{X: 4, Y: 3}) {
		t.Fatalf("stepping after restart: head = %v, want (4,3)", g.Head())
	}
}

func TestRunToAppleOnDefaultGrid(t *testing.T) {
	g := New(DefaultConfig(), fixed(core.Cell{X: 25, Y: 17}))

	for i := 0; i < 6; i++ {
		g.Advance(0.09)
	}
	if g.Head() != (core.Cell{X: 9, Y: 3}) {
		t.Fatalf("head = %v, want (9,3)", g.Head())
	}
	assertBody(t, g, cells(8, 3))
	if g.Apple() != (core.Cell{X: 10, Y: 10}) {
		t.Fatalf("apple moved to %v", g.Apple())
	}

	g.Advance(0.09)
	if g.Head() != (core.Cell{X: 10, Y: 3}) {
		t.Fatalf("head = %v, want (10,3)", g.Head())
	}
	if ev := g.Advance(0.01); ev != 0 {
		t.Fatalf("event = %v before reaching the apple", ev)
	}

	g.HandleDirection(core.Down)
	for i := 0; i < 7; i++ {
		g.Advance(0.09)
	}
	if g.Head() != (core.Cell{X: 10, Y: 10}) {
		t.Fatalf("head = %v, want on apple", g.Head())
	}
	if ev := g.Advance(0); !ev.Has(EventAte) {
		t.Fatalf("event = %v, want ate", ev)
	}
	if g.Len() != 2 || g.Apple() != (core.Cell{X: 25, Y: 17}) {
		t.Fatalf("len = %d apple = %v after eating", g.Len(), g.Apple())
	}
}

func TestAppleMayLandOnBody(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AppleStart = cfg.Start
	g := New(cfg, fixed(cfg.Start))

	g.Advance(0)
	if g.Apple() != cfg.Start {
		t.Fatalf("apple = %v, want placed on the body at %v", g.Apple(), cfg.Start)
	}
	if !slices.Contains(g.Body(), g.Apple()) {
		t.Fatal("apple should overlap the body")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 12, 12
	cfg.Seed = 4242
	a, b := New(cfg, nil), New(cfg, nil)
	for i := 0; i < 400; i++ {
		a.HandleDirection(Autopilot(a))
		b.HandleDirection(Autopilot(b))
		if ea, eb := a.Advance(0.05), b.Advance(0.05); ea != eb {
			t.Fatalf("frame %d: events %v vs %v", i, ea, eb)
		}
	}
	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Head != sb.Head || sa.Apple != sb.Apple || !slices.Equal(sa.Body, sb.Body) {
		t.Fatalf("games diverged: %+v vs %+v", sa, sb)
	}
}
