package viewer

import "math"

// channelScale is the number of stored units per 1.0 of a color channel.
const channelScale = 1000

// Channel is a color channel in [0,1], stored in thousandths so repeated
// fixed steps land on exact decimal values.
type Channel int

// ChannelOf converts a normalized value to a Channel, clamping to [0,1].
func ChannelOf(v float64) Channel {
	return Channel(clampUnits(int(math.Round(v * channelScale))))
}

// Value returns the channel as a float in [0,1].
func (c Channel) Value() float64 {
	return float64(c) / channelScale
}

// Byte returns the channel truncated to 0..255, as shown in the overlay.
func (c Channel) Byte() int {
	return int(c) * 255 / channelScale
}

// add moves the channel by delta units, clamped to [0,1].
func (c *Channel) add(delta int) {
	*c = Channel(clampUnits(int(*c) + delta))
}

func clampUnits(u int) int {
	if u < 0 {
		return 0
	}
	if u > channelScale {
		return channelScale
	}
	return u
}

// Color is the adjustable solid color of the dynamic texture.
type Color struct {
	R, G, B Channel
}

// RGB returns the normalized channel values.
func (c Color) RGB() (r, g, b float64) {
	return c.R.Value(), c.G.Value(), c.B.Value()
}
