// internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"rgbknob-go/errcode"
	"rgbknob-go/internal/halcore"
	"rgbknob-go/internal/platform/setups"
)

// Open configures pins, ADC, console UART and (optionally) the LCD I²C bus
// as described by plan.
func Open(plan setups.Plan) (*Board, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	b := &Board{Plan: plan, Clock: halcore.SystemClock{}}

	for i, n := range plan.RGB {
		p := machine.Pin(n)
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
		b.RGB[i] = p
	}

	a := machine.Pin(plan.ButtonA)
	a.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	b.ButtonA = a
	bb := machine.Pin(plan.ButtonB)
	bb.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	b.ButtonB = bb

	machine.InitADC()
	adc := machine.ADC{Pin: machine.Pin(plan.Knob)}
	adc.Configure(machine.ADCConfig{})
	b.Knob = &rp2ADC{adc: adc}

	b.Console = discard{}
	if plan.Console.ID != "" {
		var hw *uartx.UART
		switch plan.Console.ID {
		case "uart0":
			hw = uartx.UART0
		case "uart1":
			hw = uartx.UART1
		}
		// Defaults inside uartx apply if zero.
		_ = hw.Configure(uartx.UARTConfig{
			BaudRate: plan.Console.Baud,
			TX:       machine.Pin(plan.Console.TX),
			RX:       machine.Pin(plan.Console.RX),
		})
		b.Console = hw
	}

	if plan.LCD != nil {
		var bus *machine.I2C
		switch plan.LCD.Bus {
		case "i2c0":
			bus = machine.I2C0
		case "i2c1":
			bus = machine.I2C1
		default:
			return nil, errcode.UnknownBus
		}
		err := bus.Configure(machine.I2CConfig{
			Frequency: plan.LCD.Hz,
			SDA:       machine.Pin(plan.LCD.SDA),
			SCL:       machine.Pin(plan.LCD.SCL),
		})
		if err != nil {
			return nil, &errcode.E{C: errcode.UnknownBus, Op: "i2c", Err: err}
		}
		b.LCDBus = bus
	}
	return b, nil
}

// ---- ADC ----

// Number of throwaway conversions after power-up; the RP2 ADC has no
// offset calibration so settling is all we can do.
const settleReads = 8

type rp2ADC struct {
	adc machine.ADC
}

func (r *rp2ADC) Calibrate(ctx context.Context) error {
	for i := 0; i < settleReads; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = r.adc.Get()
		time.Sleep(time.Millisecond)
	}
	return nil
}

// Sample returns a 14-bit code. machine.ADC.Get scales the 12-bit result
// to 16 bits; dropping two bits keeps the knob mapping's 0..0x3FFF domain.
func (r *rp2ADC) Sample(ctx context.Context) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int32(r.adc.Get() >> 2), nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
