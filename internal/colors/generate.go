// SPDX-License-Identifier: MIT
package colors

import (
	"math"
	"math/rand/v2"
)

// Generation ranges, as [min, maxExclusive). Light starts where dark ends so
// the two bands never share a value.
const (
	hueMin   = 1
	hueMax   = 361
	lightMin = 50
	lightMax = 101
	darkMin  = 1
	darkMax  = 50
)

// RandomSource yields uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// SourceFunc adapts a plain function to RandomSource
type SourceFunc func() float64

// Float64 calls f
func (f SourceFunc) Float64() float64 {
	return f()
}

// NewSource returns a deterministic source for the given seed.
// The returned source is not safe for concurrent use.
func NewSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SystemSource returns the runtime's auto-seeded source. It is safe for concurrent use.
func SystemSource() RandomSource {
	return SourceFunc(rand.Float64)
}

// Generate draws a random color for theme. Hue is drawn first, then saturation,
// then lightness. Hue is in [1, 360]; light saturation and lightness are in
// [50, 100] and dark ones in [1, 49].
func Generate(theme Theme, rng RandomSource) Color {
	lo, hi := theme.bounds()
	h := intRange(rng, hueMin, hueMax)
	s := intRange(rng, lo, hi)
	l := intRange(rng, lo, hi)
	return Color{H: h, S: float64(s), L: float64(l)}
}

// intRange returns floor(rng*(hi-lo)) + lo for the half-open range [lo, hi),
// kept inside [lo, hi-1] even if rng strays outside [0, 1)
func intRange(rng RandomSource, lo, hi int) int {
	v := rng.Float64()
	if math.IsNaN(v) || v < 0 {
		return lo
	}
	if v >= 1 {
		return hi - 1
	}
	return int(math.Floor(v*float64(hi-lo))) + lo
}
