// internal/platform/board.go
package platform

import (
	"io"

	"tinygo.org/x/drivers"

	"rgbknob-go/internal/halcore"
	"rgbknob-go/internal/platform/setups"
)

// Board is the configured hardware handed to the control loops.
type Board struct {
	Plan setups.Plan

	RGB     [3]halcore.OutputPin
	ButtonA halcore.InputPin
	ButtonB halcore.InputPin
	Knob    halcore.AnalogSampler
	Clock   halcore.Clock

	// Console receives diagnostic text. Never nil.
	Console io.Writer

	// LCDBus is the configured I²C bus for the display, nil when the plan has none.
	LCDBus drivers.I2C
}

// Selected returns the plan chosen at build time.
func Selected() setups.Plan { return setups.SelectedPlan }
