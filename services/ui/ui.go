// Package ui is the input controller: it polls the knob and the two mode
// buttons and writes levels or frame rate into shared state.
//
// Buttons are level-sensed on every poll (no edge detection):
//
//	A        B        action
//	released released frame rate <- level*10 + 10
//	held     held     red   <- level
//	released held     green <- level
//	held     released blue  <- level
package ui

import (
	"context"
	"time"

	"rgbknob-go/internal/halcore"
	"rgbknob-go/services/diag"
	"rgbknob-go/state"
	"rgbknob-go/types"
)

const (
	// PollInterval is the fixed cadence of the controller loop.
	PollInterval = 50 * time.Millisecond
	// FrameRateStep is the frame-rate increment per knob level.
	FrameRateStep = 10
	// DefaultFrameRate seeds the controller's shadow copy.
	DefaultFrameRate types.FrameRate = 100
)

// Measurer yields the current knob level. *knob.Knob implements it.
type Measurer interface {
	Measure(ctx context.Context) types.Level
}

type Config struct {
	Knob    Measurer
	ButtonA halcore.InputPin
	ButtonB halcore.InputPin
	State   *state.State
	Clock   halcore.Clock
	Sink    diag.Sink // nil => discard
}

// Mode is the action selected by the button combination.
type Mode uint8

const (
	ModeFrameRate Mode = iota
	ModeRed
	ModeGreen
	ModeBlue
)

func (m Mode) String() string {
	switch m {
	case ModeRed:
		return "red"
	case ModeGreen:
		return "green"
	case ModeBlue:
		return "blue"
	default:
		return "frame_rate"
	}
}

// SelectMode maps held/released button levels to exactly one action.
func SelectMode(aHeld, bHeld bool) Mode {
	switch {
	case !aHeld && !bHeld:
		return ModeFrameRate
	case aHeld && bHeld:
		return ModeRed
	case bHeld:
		return ModeGreen
	default:
		return ModeBlue
	}
}

// StartupChannel picks the channel seeded at startup: A held => blue,
// else B held => green, else red.
func StartupChannel(aHeld, bHeld bool) int {
	switch {
	case aHeld:
		return types.Blue
	case bHeld:
		return types.Green
	default:
		return types.Red
	}
}

// FrameRateFor maps a knob level to a frame rate in [10, 160].
func FrameRateFor(level types.Level) types.FrameRate {
	return types.FrameRate(level)*FrameRateStep + FrameRateStep
}

type Controller struct {
	cfg Config

	// Shadow of what this controller last wrote; used only to suppress
	// redundant writes and reports.
	shadow types.UIState
}

func New(cfg Config) *Controller {
	if cfg.Sink == nil {
		cfg.Sink = diag.Discard{}
	}
	if cfg.Clock == nil {
		cfg.Clock = halcore.SystemClock{}
	}
	return &Controller{
		cfg: cfg,
		shadow: types.UIState{
			Levels:    types.RGBLevels{types.MaxLevel, types.MaxLevel, types.MaxLevel},
			FrameRate: DefaultFrameRate,
		},
	}
}

// Shadow returns the controller's cached view. Not safe to call
// concurrently with Run.
func (c *Controller) Shadow() types.UIState { return c.shadow }

// Run seeds the startup channel then polls every PollInterval until ctx is
// cancelled. In firmware ctx is never cancelled and Run does not return.
func (c *Controller) Run(ctx context.Context) {
	c.Start(ctx)
	println("[ui] polling every", int(PollInterval/time.Millisecond), "ms")
	for ctx.Err() == nil {
		c.Poll(ctx)
		c.cfg.Clock.Sleep(PollInterval)
	}
}

// Start measures once and writes the value to the startup channel
// unconditionally, then publishes all shadow levels to shared state.
func (c *Controller) Start(ctx context.Context) {
	ch := StartupChannel(c.held())
	c.shadow.Levels[ch] = c.cfg.Knob.Measure(ctx)
	c.cfg.State.SetLevels(c.shadow.Levels)
	c.cfg.Sink.Report(c.shadow)
}

// Poll runs one controller iteration without sleeping and returns the mode
// it acted on.
func (c *Controller) Poll(ctx context.Context) Mode {
	level := c.cfg.Knob.Measure(ctx)
	mode := SelectMode(c.held())
	switch mode {
	case ModeFrameRate:
		c.updateFrameRate(FrameRateFor(level))
	case ModeRed:
		c.UpdateLED(types.Red, level)
	case ModeGreen:
		c.UpdateLED(types.Green, level)
	case ModeBlue:
		c.UpdateLED(types.Blue, level)
	}
	return mode
}

// UpdateLED writes level to channel ch only if it differs from the shadow.
// Order on change: shadow, shared state, report.
func (c *Controller) UpdateLED(ch int, level types.Level) {
	if level == c.shadow.Levels[ch] {
		return
	}
	c.shadow.Levels[ch] = level
	c.cfg.State.SetLevels(c.shadow.Levels)
	c.cfg.Sink.Report(c.shadow)
}

// updateFrameRate writes on every poll; only a change is reported.
func (c *Controller) updateFrameRate(fr types.FrameRate) {
	changed := fr != c.shadow.FrameRate
	c.shadow.FrameRate = fr
	c.cfg.State.SetFrameRate(fr)
	if changed {
		c.cfg.Sink.Report(c.shadow)
	}
}

func (c *Controller) held() (aHeld, bHeld bool) {
	return halcore.Held(c.cfg.ButtonA), halcore.Held(c.cfg.ButtonB)
}
