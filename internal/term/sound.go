package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Sound plays short cues for game events.
type Sound interface {
	Eat()
	Die()
	Close()
}

type silent struct{}

func (silent) Eat()   {}
func (silent) Die()   {}
func (silent) Close() {}

// Silent returns a Sound that does nothing.
func Silent() Sound { return silent{} }

type beeper struct {
	rate beep.SampleRate
}

// NewBeeper opens the default audio device.
func NewBeeper() (Sound, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beeper{rate: rate}, nil
}

func (b *beeper) Eat() { b.tone(880, 60*time.Millisecond) }

func (b *beeper) Die() { b.tone(220, 300*time.Millisecond) }

func (b *beeper) Close() { speaker.Close() }

func (b *beeper) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(b.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.rate.N(d), sine))
}
