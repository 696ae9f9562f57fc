package snake

import "gridsnake/internal/core"

// Autopilot picks the next direction for headless runs. It heads for the apple
// along the shortest Manhattan route while refusing moves that die on the next
// step or lead into a pocket smaller than the snake.
func Autopilot(g *Game) core.Direction {
	size := g.size
	head := g.head

	// Cells occupied after the next shift: the current head plus all but the
	// tail segment.
	blocked := make(map[core.Cell]bool, len(g.body)+1)
	blocked[head] = true
	for i := 0; i+1 < len(g.body); i++ {
		blocked[g.body[i]] = true
	}

	best := g.dir
	bestScore := -1 << 30
	for _, d := range core.Directions {
		if d == g.dir.Opposite() {
			continue
		}
		next := head.Step(d)
		if !size.Inside(next) || blocked[next] {
			continue
		}
		area := floodArea(size, next, blocked)
		score := -manhattan(next, g.apple)
		if area <= len(g.body)+1 {
			score -= 10000 - area
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

func floodArea(size core.Size, from core.Cell, blocked map[core.Cell]bool) int {
	seen := map[core.Cell]bool{from: true}
	stack := []core.Cell{from}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range core.Directions {
			n := c.Step(d)
			if !size.Inside(n) || blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
	return len(seen)
}

func manhattan(a, b core.Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
