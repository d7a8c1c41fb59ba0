//go:build !pico_lcd

package setups

// Pico breadboard: common-cathode RGB LED on GP13..GP15 via resistors,
// buttons to ground on GP16/GP17, 10k pot wiper on GP26.
var SelectedPlan = Plan{
	Name:    "pico_default",
	RGB:     [3]int{13, 14, 15},
	ButtonA: 16,
	ButtonB: 17,
	Knob:    26,
	Console: UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115200},
}
