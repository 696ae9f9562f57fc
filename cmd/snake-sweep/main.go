package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/sweep"
)

func main() {
	frames := flag.Int("frames", 20000, "frames to simulate per scenario")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first scenario")
	flag.Parse()

	sizes := []core.Size{{W: 10, H: 10}, {W: 20, H: 20}, {W: 30, H: 30}, {W: 40, H: 25}}
	steps := []float64{0.05, 0.08, 0.12}
	scenarios := sweep.Grid(sizes, steps, *seed)

	fmt.Printf("Sweeping %d scenarios (%d workers, %d frames, dt=%.4f)\n", len(scenarios), *workers, *frames, *dt)
	start := time.Now()
	results := sweep.Run(scenarios, *workers, *frames, *dt)

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range results {
		status := "alive"
		if res.Died {
			status = "dead"
		}
		fmt.Printf("%2d) apples=%d moves=%d frames=%d %s %s id=%s\n",
			i+1, res.Apples, res.Moves, res.Frames, status, res.Scenario, res.ID)
	}
}
