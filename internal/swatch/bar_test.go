// SPDX-License-Identifier: MIT
package swatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/colorbar/internal/colors"
)

func TestNewBarGeneratesImmediately(t *testing.T) {
	bar := NewBar(colors.Dark, colors.NewSource(3))

	current := bar.Current()
	require.NotNil(t, current)
	assert.LessOrEqual(t, current.S, 49.0)
	assert.Equal(t, colors.Dark, bar.Theme())
}

func TestRefreshReplacesColor(t *testing.T) {
	values := []float64{0, 0, 0, 0.5, 0.5, 0.5}
	i := 0
	rng := colors.SourceFunc(func() float64 {
		v := values[i]
		i++
		return v
	})

	bar := NewBar(colors.Light, rng)
	first := *bar.Current()

	second := bar.Refresh()

	assert.Equal(t, colors.Color{H: 1, S: 50, L: 50}, first)
	assert.Equal(t, colors.Color{H: 181, S: 75, L: 75}, second)
	assert.Equal(t, second, *bar.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
	bar := NewBar(colors.Light, colors.NewSource(1))

	c := bar.Current()
	c.H = -1

	assert.NotEqual(t, -1, bar.Current().H)
}

func TestBarConcurrentRefresh(t *testing.T) {
	bar := NewBar(colors.Light, colors.SystemSource())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bar.Refresh()
				_ = bar.Snapshot()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, bar.Current().L, 50.0)
}

func TestSnapshot(t *testing.T) {
	bar := NewBar(colors.Dark, colors.NewSource(5))
	c := bar.Current()

	s := bar.Snapshot()

	assert.Equal(t, "DARK", s.Title)
	assert.Equal(t, c.Hex(), s.Hex)
	assert.Equal(t, c.RGB(), s.RGB)
	assert.Equal(t, c.HSL(), s.HSL)
	assert.Equal(t, "#fff", s.Foreground)
}
