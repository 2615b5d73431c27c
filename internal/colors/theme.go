// SPDX-License-Identifier: MIT
package colors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every error returned for a malformed input value
var ErrInvalidArgument = errors.New("invalid argument")

// Theme selects the lightness/saturation band colors are generated in.
// Only Light and Dark exist; the zero value is Light.
type Theme struct {
	dark bool
}

var (
	Light = Theme{dark: false}
	Dark  = Theme{dark: true}
)

// Themes returns every theme in display order
func Themes() []Theme {
	return []Theme{Light, Dark}
}

// ParseTheme converts "light" or "dark" (case-insensitive) into a Theme
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: unknown theme %q (want light or dark)", ErrInvalidArgument, name)
	}
}

// IsDark reports whether t is the dark theme
func (t Theme) IsDark() bool {
	return t.dark
}

// String returns the lowercase theme name
func (t Theme) String() string {
	if t.dark {
		return "dark"
	}
	return "light"
}

// Label returns the heading shown above a swatch
func (t Theme) Label() string {
	return strings.ToUpper(t.String())
}

// Foreground returns the text color that stays readable on a swatch of this theme
func (t Theme) Foreground() string {
	if t.dark {
		return "#fff"
	}
	return "#000"
}

// MarshalText implements encoding.TextMarshaler
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// bounds returns the [min, maxExclusive) range for saturation and lightness
func (t Theme) bounds() (int, int) {
	if t.dark {
		return darkMin, darkMax
	}
	return lightMin, lightMax
}
