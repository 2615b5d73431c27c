// SPDX-License-Identifier: MIT
package swatch

import (
	"github.com/thatcatcamp/colorbar/internal/colors"
)

// Swatch is a display snapshot of one color in every notation
type Swatch struct {
	Theme      colors.Theme `json:"theme" yaml:"theme"`
	Title      string       `json:"title" yaml:"title"`
	H          int          `json:"h" yaml:"h"`
	S          float64      `json:"s" yaml:"s"`
	L          float64      `json:"l" yaml:"l"`
	HSL        string       `json:"hsl" yaml:"hsl"`
	Hex        string       `json:"hex" yaml:"hex"`
	RGB        string       `json:"rgb" yaml:"rgb"`
	Background string       `json:"background" yaml:"background"`
	Foreground string       `json:"foreground" yaml:"foreground"`
}

// New builds a swatch for theme. A nil color produces empty notations.
func New(theme colors.Theme, c *colors.Color) Swatch {
	s := Swatch{
		Theme:      theme,
		Title:      theme.Label(),
		HSL:        colors.ToHSL(c),
		Hex:        colors.ToHex(c),
		RGB:        colors.ToRGB(c),
		Foreground: theme.Foreground(),
	}
	if c != nil {
		s.H, s.S, s.L = c.H, c.S, c.L
		s.Background = s.HSL
	}
	return s
}

// Empty reports whether the swatch has no color yet
func (s Swatch) Empty() bool {
	return s.Hex == ""
}
