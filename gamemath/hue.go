package gamemath

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// WrapHue wraps a hue in degrees into [0, 360).
func WrapHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueColor returns a fully saturated, full-value color for hue+offset degrees.
func HueColor(hue, offset float64) color.RGBA {
	return HSVColor(hue+offset, 1, 1)
}

// HSVColor converts hue (degrees, any range), saturation and value to an opaque RGBA.
func HSVColor(hue, saturation, value float64) color.RGBA {
	c := colorful.Hsv(WrapHue(hue), saturation, value).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ApplyDeadzone zeroes axis values inside [-deadzone, deadzone] and rescales the rest
// so the output still spans [-1, 1].
func ApplyDeadzone(axis, deadzone float64) float64 {
	if deadzone >= 1 {
		return 0
	}
	if math.Abs(axis) <= deadzone {
		return 0
	}
	sign := 1.0
	if axis < 0 {
		sign = -1.0
	}
	v := (math.Abs(axis) - deadzone) / (1 - deadzone)
	return sign * math.Min(v, 1)
}
