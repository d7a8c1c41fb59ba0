package timex

import (
	"time"

	"rgbknob-go/x/mathx"
)

// Micros converts a microsecond count to a time.Duration.
func Micros(us uint64) time.Duration { return time.Duration(us) * time.Microsecond }

// TickMicros divides one period of freqHz into ticks equal parts and
// returns the length of one part in whole microseconds (truncated).
// freqHz==0 is coerced to 1 to avoid division by zero; ticks likewise.
func TickMicros(freqHz, ticks uint32) uint64 {
	f := uint64(mathx.AtLeast(freqHz, 1))
	n := uint64(mathx.AtLeast(ticks, 1))
	return 1_000_000 / (f * n)
}
