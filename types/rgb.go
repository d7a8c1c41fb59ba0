package types

// ------------------------
// Indicator light
// ------------------------

// Levels is the number of brightness steps per channel.
const Levels = 16

// Channels is the number of colour channels driven by the PWM loop.
const Channels = 3

// Channel indices in drive order.
const (
	Red   = 0
	Green = 1
	Blue  = 2
)

// ChannelNames maps channel index to its display name.
var ChannelNames = [Channels]string{"red", "green", "blue"}

// Level is a quantized brightness in [0, Levels-1].
type Level uint8

// MaxLevel is the brightest level.
const MaxLevel Level = Levels - 1

// FrameRate is the number of complete red/green/blue cycles per second.
type FrameRate uint32

// RGBLevels holds one level per channel, indexed by Red/Green/Blue.
type RGBLevels [Channels]Level

// ------------------------
// UI state (retained on ui/state)
// ------------------------

type UIState struct {
	Levels    RGBLevels `json:"levels"`
	FrameRate FrameRate `json:"frame_rate"`
}
