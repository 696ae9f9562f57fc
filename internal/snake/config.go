package snake

import (
	"strconv"

	"gridsnake/internal/core"
)

// DefaultStepInterval is the number of seconds between movement steps.
const DefaultStepInterval = 0.08

// Config holds the immutable playfield settings of a Game.
type Config struct {
	Width  int
	Height int

	// StepInterval is the accumulated dt, in seconds, that must be exceeded
	// before the snake moves one cell.
	StepInterval float64

	Start      core.Cell
	AppleStart core.Cell

	// Seed feeds the default apple placer. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the standard 30×30 configuration.
func DefaultConfig() Config {
	return Config{
		Width:        30,
		Height:       30,
		StepInterval: DefaultStepInterval,
		Start:        core.Cell{X: 3, Y: 3},
		AppleStart:   core.Cell{X: 10, Y: 10},
	}
}

// Size returns the playable dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.StepInterval = parsed
		}
	}
	if v, ok := cfg["start_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Start.X = parsed
		}
	}
	if v, ok := cfg["start_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Start.Y = parsed
		}
	}
	if v, ok := cfg["apple_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.AppleStart.X = parsed
		}
	}
	if v, ok := cfg["apple_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.AppleStart.Y = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c.normalized()
}

// normalized clamps sizes, step interval and start cells into a playable
// configuration.
func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.StepInterval <= 0 {
		c.StepInterval = DefaultStepInterval
	}
	c.Start = clampCell(c.Start, c.Width, c.Height)
	c.AppleStart = clampCell(c.AppleStart, c.Width, c.Height)
	return c
}

func clampCell(p core.Cell, w, h int) core.Cell {
	p.X = min(max(p.X, 1), w)
	p.Y = min(max(p.Y, 1), h)
	return p
}
