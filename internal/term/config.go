package term

import (
	"flag"
	"time"

	"gridsnake/internal/snake"
)

// Config holds the terminal front-end flags.
type Config struct {
	Width  int
	Height int
	Step   float64
	Seed   int64

	FPS   int
	Sound bool
	Log   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := snake.DefaultConfig()
	return &Config{
		Width:  def.Width,
		Height: def.Height,
		Step:   def.StepInterval,
		FPS:    60,
		Sound:  true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "playfield width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "playfield height in cells")
	fs.Float64Var(&c.Step, "step", c.Step, "seconds between snake moves")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for apple placement (0 uses the clock)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "redraws per second")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play tones on eating and dying")
	fs.StringVar(&c.Log, "log", c.Log, "append log output to this file")
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

// FrameInterval is the redraw period.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}
