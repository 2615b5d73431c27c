// SPDX-License-Identifier: MIT
package colors

import (
	"fmt"
	"strconv"
)

// Color is an HSL color. H is in degrees, S and L are percentages.
// Values outside the display ranges are accepted and normalized by the converters.
type Color struct {
	H int
	S float64
	L float64
}

// HSL formats the color as hsl(h, s%, l%) using the stored values
func (c Color) HSL() string {
	return fmt.Sprintf("hsl(%d, %s%%, %s%%)", c.H, formatNumber(c.S), formatNumber(c.L))
}

// ToHSL formats c as hsl(h, s%, l%). A nil color has no notation and yields "".
func ToHSL(c *Color) string {
	if c == nil {
		return ""
	}
	return c.HSL()
}

// ToHex formats c as #rrggbb. A nil color yields "".
func ToHex(c *Color) string {
	if c == nil {
		return ""
	}
	return c.Hex()
}

// ToRGB formats c as rgb(r, g, b). A nil color yields "".
func ToRGB(c *Color) string {
	if c == nil {
		return ""
	}
	return c.RGB()
}

// formatNumber prints integers without a fractional part and everything else in
// the shortest form that round-trips
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
