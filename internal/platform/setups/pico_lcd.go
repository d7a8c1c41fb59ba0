//go:build pico_lcd

package setups

// As pico_default, plus a 16x2 HD44780 with PCF8574 backpack on i2c0.
var SelectedPlan = Plan{
	Name:    "pico_lcd",
	RGB:     [3]int{13, 14, 15},
	ButtonA: 16,
	ButtonB: 17,
	Knob:    26,
	Console: UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115200},
	LCD:     &LCDPlan{Bus: "i2c0", SDA: 4, SCL: 5, Hz: 400_000, Addr: 0x27},
}
