package app

import (
	"flag"

	"gridsnake/internal/snake"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Width  int
	Height int
	Step   float64
	Seed   int64
	Scale  int
	TPS    int
	HUD    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := snake.DefaultConfig()
	return &Config{
		Width:  def.Width,
		Height: def.Height,
		Step:   def.StepInterval,
		Scale:  20,
		TPS:    60,
		HUD:    200,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "playfield width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "playfield height in cells")
	fs.Float64Var(&c.Step, "step", c.Step, "seconds between snake moves")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for apple placement (0 uses the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUD, "hud", c.HUD, "status panel width in pixels (0 hides it)")
}

// Sim returns the simulation configuration selected by the flags.
func (c *Config) Sim() snake.Config {
	cfg := snake.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.StepInterval = c.Step
	cfg.Seed = c.Seed
	return cfg
}

// FrameDelta returns the dt fed to the game each frame.
func (c *Config) FrameDelta() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TPS)
}
