// SPDX-License-Identifier: MIT
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/colorbar/internal/colors"
	"github.com/thatcatcamp/colorbar/internal/swatch"
)

// counter yields 0, 0.1, 0.2, ... so every draw differs from the previous one
func counter() colors.RandomSource {
	n := 0
	return colors.SourceFunc(func() float64 {
		v := float64(n%10) / 10
		n++
		return v
	})
}

func newTestModel() (Model, []*swatch.Bar) {
	rng := counter()
	bars := []*swatch.Bar{
		swatch.NewBar(colors.Light, rng),
		swatch.NewBar(colors.Dark, rng),
	}
	return NewModel(bars, true, nil), bars
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRefreshAllBars(t *testing.T) {
	m, bars := newTestModel()
	before := []colors.Color{*bars[0].Current(), *bars[1].Current()}

	_, cmd := m.Update(keyPress("r"))

	assert.Nil(t, cmd)
	assert.NotEqual(t, before[0], *bars[0].Current())
	assert.NotEqual(t, before[1], *bars[1].Current())
}

func TestRefreshSingleBar(t *testing.T) {
	m, bars := newTestModel()
	first := *bars[0].Current()
	second := *bars[1].Current()

	m.Update(keyPress("2"))

	assert.Equal(t, first, *bars[0].Current())
	assert.NotEqual(t, second, *bars[1].Current())
}

func TestRefreshMissingBarIsIgnored(t *testing.T) {
	bar := swatch.NewBar(colors.Light, counter())
	m := NewModel([]*swatch.Bar{bar}, true, nil)

	assert.NotPanics(t, func() { m.Update(keyPress("2")) })
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsEveryNotation(t *testing.T) {
	m, bars := newTestModel()

	view := m.View()

	for _, bar := range bars {
		c := bar.Current()
		assert.Contains(t, view, c.HSL())
		assert.Contains(t, view, c.Hex())
		assert.Contains(t, view, c.RGB())
	}
	assert.Contains(t, view, "LIGHT")
	assert.Contains(t, view, "DARK")
	assert.Contains(t, view, "quit")
}

func TestNonKeyMessagesAreIgnored(t *testing.T) {
	m, bars := newTestModel()
	before := *bars[0].Current()

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, before, *bars[0].Current())
}
