package diag

import (
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"

	"rgbknob-go/errcode"
	"rgbknob-go/types"
)

const (
	lcdColumns = 16
	lcdRows    = 2
)

// LCD mirrors the UI state on a 16x2 HD44780 behind a PCF8574 backpack:
//
//	R15 G15 B15
//	fps 100
type LCD struct {
	dev   hd44780i2c.Device
	line1 []byte
	line2 []byte
}

// NewLCD probes addr on bus and initialises the display. Initialisation
// takes about a second.
func NewLCD(bus drivers.I2C, addr uint8) (*LCD, error) {
	// The driver ignores I²C errors, so check the backpack answers first.
	if err := bus.Tx(uint16(addr), []byte{0}, nil); err != nil {
		return nil, &errcode.E{C: errcode.LCDUnavailable, Op: "lcd", Msg: "no ack", Err: err}
	}
	dev := hd44780i2c.New(bus, addr)
	if err := dev.Configure(hd44780i2c.Config{Width: lcdColumns, Height: lcdRows}); err != nil {
		return nil, &errcode.E{C: errcode.LCDUnavailable, Op: "lcd", Err: err}
	}
	return &LCD{
		dev:   dev,
		line1: make([]byte, 0, lcdColumns),
		line2: make([]byte, 0, lcdColumns),
	}, nil
}

func (l *LCD) Report(s types.UIState) {
	l.line1, l.line2 = AppendLCDLines(l.line1[:0], l.line2[:0], s)
	l.dev.ClearDisplay()
	l.dev.SetCursor(0, 0)
	l.dev.Print(l.line1)
	l.dev.SetCursor(0, 1)
	l.dev.Print(l.line2)
}

// AppendLCDLines renders s as the two display lines, each truncated to
// the display width.
func AppendLCDLines(line1, line2 []byte, s types.UIState) ([]byte, []byte) {
	for i, name := range types.ChannelNames {
		if i > 0 {
			line1 = append(line1, ' ')
		}
		line1 = append(line1, name[0]-'a'+'A')
		line1 = strconv.AppendUint(line1, uint64(s.Levels[i]), 10)
	}
	line2 = append(line2, "fps "...)
	line2 = strconv.AppendUint(line2, uint64(s.FrameRate), 10)
	if len(line1) > lcdColumns {
		line1 = line1[:lcdColumns]
	}
	if len(line2) > lcdColumns {
		line2 = line2[:lcdColumns]
	}
	return line1, line2
}
