// SPDX-License-Identifier: MIT
package colors

import (
	"fmt"
	"math"
)

// normalize wraps h into [0, 360) and clamps s and l to [0, 100], returning
// s and l as fractions in [0, 1]
func (c Color) normalize() (h, s, l float64) {
	h = float64(((c.H % 360) + 360) % 360)
	s = clamp(c.S, 0, 100) / 100
	l = clamp(c.L, 0, 100) / 100
	return h, s, l
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// Hex formats the color as #rrggbb with lowercase digits
func (c Color) Hex() string {
	h, s, l := c.normalize()

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x", toByte(r+m), toByte(g+m), toByte(b+m))
}

// RGB255 returns the 8-bit red, green and blue channels of the color
func (c Color) RGB255() (r, g, b uint8) {
	h, s, l := c.normalize()

	if s == 0 {
		v := toByte(l)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	t := h / 360

	return toByte(hueToRGB(p, q, t+1.0/3)),
		toByte(hueToRGB(p, q, t)),
		toByte(hueToRGB(p, q, t-1.0/3))
}

// RGB formats the color as rgb(r, g, b)
func (c Color) RGB() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// toByte scales a [0, 1] channel to [0, 255], rounding half up
func toByte(v float64) uint8 {
	return uint8(clamp(math.Round(v*255), 0, 255))
}
