// internal/halcore/types.go
package halcore

import (
	"context"
	"time"
)

// ---- GPIO abstractions ----

// OutputPin is a push-pull output. Both calls are synchronous and immediate.
// machine.Pin satisfies it directly.
type OutputPin interface {
	High()
	Low()
}

// InputPin is a level-polled input. machine.Pin satisfies it directly.
type InputPin interface {
	Get() bool
}

// Held reports whether an active-low button is pressed (pin pulled low).
func Held(p InputPin) bool { return !p.Get() }

// ---- Analog ----

// AnalogSampler is a single-channel ADC front-end.
// Calibrate blocks until the front-end is ready; Sample blocks until one raw
// code has been captured. Codes are expected roughly in [0, 0x7FFF].
type AnalogSampler interface {
	Calibrate(ctx context.Context) error
	Sample(ctx context.Context) (int32, error)
}

// ---- Timing ----

// Clock is the suspension primitive used by the control loops.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps on the runtime timer.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
