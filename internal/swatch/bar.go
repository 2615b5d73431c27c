// SPDX-License-Identifier: MIT
package swatch

import (
	"sync"

	"github.com/thatcatcamp/colorbar/internal/colors"
)

// Bar holds the current color of one theme and replaces it on refresh
type Bar struct {
	theme colors.Theme
	rng   colors.RandomSource

	mu      sync.Mutex
	current *colors.Color
}

// NewBar creates a bar for theme and draws its first color from rng
func NewBar(theme colors.Theme, rng colors.RandomSource) *Bar {
	b := &Bar{theme: theme, rng: rng}
	b.Refresh()
	return b
}

// Theme returns the bar's theme
func (b *Bar) Theme() colors.Theme {
	return b.theme
}

// Refresh replaces the current color with a freshly generated one
func (b *Bar) Refresh() colors.Color {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := colors.Generate(b.theme, b.rng)
	b.current = &c
	return c
}

// Current returns a copy of the current color, or nil before the first refresh
func (b *Bar) Current() *colors.Color {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}
	c := *b.current
	return &c
}

// Snapshot captures the bar's current state for display
func (b *Bar) Snapshot() Swatch {
	return New(b.theme, b.Current())
}
