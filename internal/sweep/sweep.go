// Package sweep runs batches of headless autopilot games to compare grid
// sizes and step intervals.
package sweep

import (
	"fmt"
	"sort"
	"sync"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/google/uuid"
)

// Scenario is one headless run.
type Scenario struct {
	Width  int
	Height int
	Step   float64
	Seed   int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("%dx%d step=%.3f seed=%d", s.Width, s.Height, s.Step, s.Seed)
}

// Result summarises a finished run.
type Result struct {
	ID       uuid.UUID
	Scenario Scenario
	Apples   int
	Moves    int
	Frames   int
	Died     bool
}

// Grid builds the cross product of sizes and step intervals, one seed each.
func Grid(sizes []core.Size, steps []float64, seed int64) []Scenario {
	var out []Scenario
	for _, size := range sizes {
		for _, step := range steps {
			out = append(out, Scenario{Width: size.W, Height: size.H, Step: step, Seed: seed})
			seed++
		}
	}
	return out
}

// RunScenario plays one game for at most frames frames of dt seconds each.
func RunScenario(sc Scenario, frames int, dt float64) Result {
	cfg := snake.DefaultConfig()
	cfg.Width = sc.Width
	cfg.Height = sc.Height
	cfg.StepInterval = sc.Step
	cfg.Seed = sc.Seed
	game := snake.New(cfg, core.NewRNG(sc.Seed))

	res := Result{ID: uuid.New(), Scenario: sc}
	for res.Frames < frames && !game.Frozen() {
		game.HandleDirection(snake.Autopilot(game))
		ev := game.Advance(dt)
		res.Frames++
		if ev.Has(snake.EventAte) {
			res.Apples++
		}
		if ev.Has(snake.EventMoved) {
			res.Moves++
		}
	}
	res.Died = game.Frozen()
	return res
}

// Run fans the scenarios out over workers goroutines and returns the results
// ordered by apples eaten, then by frames survived.
func Run(scenarios []Scenario, workers, frames int, dt float64) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- RunScenario(sc, frames, dt)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Apples != all[j].Apples {
			return all[i].Apples > all[j].Apples
		}
		if all[i].Frames != all[j].Frames {
			return all[i].Frames > all[j].Frames
		}
		return all[i].Scenario.String() < all[j].Scenario.String()
	})
	return all
}
