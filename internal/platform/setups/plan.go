package setups

import "rgbknob-go/errcode"

// Plan specifies the board wiring chosen by a setup. The platform layer
// consumes it to configure pins and buses; nothing here touches hardware.
type Plan struct {
	Name string

	// LED channel outputs in drive order: red, green, blue.
	RGB [3]int

	// Active-low mode buttons.
	ButtonA int
	ButtonB int

	// Knob wiper on an ADC-capable GPIO.
	Knob int

	Console UARTPlan
	LCD     *LCDPlan // nil => no display
}

type UARTPlan struct {
	ID   string // e.g. "uart0"
	TX   int    // GPIO number
	RX   int    // GPIO number
	Baud uint32
}

type LCDPlan struct {
	Bus  string // e.g. "i2c0"
	SDA  int    // GPIO number
	SCL  int    // GPIO number
	Hz   uint32 // bus frequency
	Addr uint8  // 7-bit PCF8574 backpack address
}

// GPIO range exposed on Pico / Pico 2 headers.
const (
	gpioMin = 0
	gpioMax = 28
)

// ADC-capable GPIOs on RP2 parts.
func isADCPin(n int) bool { return n >= 26 && n <= 28 }

// Validate rejects out-of-range and doubly-assigned GPIOs.
func (p Plan) Validate() error {
	used := map[int]string{}
	claim := func(n int, role string) error {
		if n < gpioMin || n > gpioMax {
			return &errcode.E{C: errcode.UnknownPin, Op: "plan", Msg: role}
		}
		if prev, ok := used[n]; ok {
			return &errcode.E{C: errcode.PinInUse, Op: "plan", Msg: role + " overlaps " + prev}
		}
		used[n] = role
		return nil
	}

	for i, n := range p.RGB {
		if err := claim(n, ledRoles[i]); err != nil {
			return err
		}
	}
	if err := claim(p.ButtonA, "button_a"); err != nil {
		return err
	}
	if err := claim(p.ButtonB, "button_b"); err != nil {
		return err
	}
	if !isADCPin(p.Knob) {
		return &errcode.E{C: errcode.InvalidParams, Op: "plan", Msg: "knob must be on GP26..GP28"}
	}
	if err := claim(p.Knob, "knob"); err != nil {
		return err
	}
	if p.Console.ID != "" {
		if p.Console.ID != "uart0" && p.Console.ID != "uart1" {
			return &errcode.E{C: errcode.UnknownBus, Op: "plan", Msg: p.Console.ID}
		}
		if err := claim(p.Console.TX, "console_tx"); err != nil {
			return err
		}
		if err := claim(p.Console.RX, "console_rx"); err != nil {
			return err
		}
	}
	if p.LCD != nil {
		if p.LCD.Bus != "i2c0" && p.LCD.Bus != "i2c1" {
			return &errcode.E{C: errcode.UnknownBus, Op: "plan", Msg: p.LCD.Bus}
		}
		if err := claim(p.LCD.SDA, "lcd_sda"); err != nil {
			return err
		}
		if err := claim(p.LCD.SCL, "lcd_scl"); err != nil {
			return err
		}
		if p.LCD.Addr == 0 || p.LCD.Addr > 0x7f {
			return &errcode.E{C: errcode.InvalidParams, Op: "plan", Msg: "lcd address"}
		}
	}
	return nil
}

var ledRoles = [3]string{"red", "green", "blue"}
