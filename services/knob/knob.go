// Package knob turns raw potentiometer codes into brightness levels.
package knob

import (
	"context"

	"rgbknob-go/errcode"
	"rgbknob-go/internal/halcore"
	"rgbknob-go/types"
	"rgbknob-go/x/mathx"
)

const (
	// MaxRaw is the top of the accepted raw code range.
	MaxRaw = 0x7fff
	// Scale normalises a raw code before mapping.
	Scale = 10_000
)

// LevelFor maps a raw code to a level:
//
//	floor(clamp((Levels+2)*raw/Scale - 2, 0, Levels-1))
//
// The +2/-2 terms saturate both ends of the knob's travel so 0 and
// Levels-1 stay reachable despite noise near the stops.
func LevelFor(raw int32) types.Level {
	raw = mathx.Clamp(raw, 0, MaxRaw)
	scaled := float32(raw) / Scale
	v := mathx.Clamp(float32(types.Levels+2)*scaled-2, 0, float32(types.Levels-1))
	// v >= 0, so truncation is floor.
	return types.Level(v)
}

type Knob struct {
	adc  halcore.AnalogSampler
	last int32
}

// New calibrates adc and returns a knob reading from it. A calibration
// failure is returned alongside a usable knob.
func New(ctx context.Context, adc halcore.AnalogSampler) (*Knob, error) {
	k := &Knob{adc: adc}
	if err := adc.Calibrate(ctx); err != nil {
		return k, &errcode.E{C: errcode.ADCFailed, Op: "calibrate", Err: err}
	}
	return k, nil
}

// Measure takes one sample and maps it. If the sampler reports an error the
// previous good code is reused.
func (k *Knob) Measure(ctx context.Context) types.Level {
	raw, err := k.adc.Sample(ctx)
	if err != nil {
		println("[knob] sample failed:", err.Error())
		raw = k.last
	}
	k.last = raw
	return LevelFor(raw)
}
