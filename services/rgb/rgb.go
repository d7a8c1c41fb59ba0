// Package rgb is the software PWM driver for the three LED channels.
//
// One frame drives red, green and blue in turn. Each channel owns a slot of
// Levels ticks: level ticks high, the rest low. Levels and frame rate are
// read from shared state once per frame, so changes never land mid-frame.
package rgb

import (
	"context"
	"time"

	"rgbknob-go/internal/halcore"
	"rgbknob-go/state"
	"rgbknob-go/types"
	"rgbknob-go/x/timex"
)

// ticksPerFrame is the number of tick units in one full RGB frame.
const ticksPerFrame = types.Channels * types.Levels

// TickTime is the length of one PWM tick at frameRate. A zero frame rate is
// treated as 1 fps.
func TickTime(frameRate types.FrameRate) time.Duration {
	return timex.Micros(timex.TickMicros(uint32(frameRate), ticksPerFrame))
}

type Driver struct {
	pins  [types.Channels]halcore.OutputPin
	clock halcore.Clock
	st    *state.State

	// Shadow of shared state for the frame in progress.
	levels types.RGBLevels
	tick   time.Duration
}

func New(pins [types.Channels]halcore.OutputPin, clock halcore.Clock, st *state.State) *Driver {
	return &Driver{
		pins:  pins,
		clock: clock,
		st:    st,
		tick:  TickTime(st.FrameRate()),
	}
}

// Run drives frames until ctx is cancelled. In firmware ctx is never
// cancelled and Run does not return.
func (d *Driver) Run(ctx context.Context) {
	println("[rgb] driver running")
	for ctx.Err() == nil {
		d.Frame()
	}
}

// Frame snapshots shared state and drives one red, green, blue cycle.
func (d *Driver) Frame() {
	d.levels = d.st.Levels()
	d.tick = TickTime(d.st.FrameRate())
	for ch := range d.pins {
		d.step(ch)
	}
}

func (d *Driver) step(ch int) {
	level := d.levels[ch]
	if level > 0 {
		d.pins[ch].High()
		d.clock.Sleep(time.Duration(level) * d.tick)
		d.pins[ch].Low()
	}
	if off := types.Levels - int(level); off > 0 {
		d.clock.Sleep(time.Duration(off) * d.tick)
	}
}
