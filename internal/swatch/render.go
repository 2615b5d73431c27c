// SPDX-License-Identifier: MIT
package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	blockWidth  = 20
	blockHeight = 5
	cardWidth   = 28
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Width(cardWidth).Align(lipgloss.Center)
	listStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#a9a9a9")).
			Padding(0, 1).
			Width(cardWidth - 2)
	cardStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Render draws a swatch as a card: title, color block and the three notations.
// When painted is false no ANSI styling is emitted.
func Render(s Swatch, painted bool) string {
	notations := []string{s.HSL, s.Hex, s.RGB}

	if !painted {
		var b strings.Builder
		b.WriteString(s.Title)
		for _, n := range notations {
			b.WriteString("\n  ")
			b.WriteString(n)
		}
		return b.String()
	}

	block := lipgloss.NewStyle().
		Width(blockWidth).
		Height(blockHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#ffffff"))
	if !s.Empty() {
		block = block.
			Background(lipgloss.Color(s.Hex)).
			Foreground(lipgloss.Color(s.Foreground))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(s.Title),
		block.Render(""),
		listStyle.Render(strings.Join(notations, "\n")),
	))
}

// RenderRow draws swatches next to each other
func RenderRow(swatches []Swatch, painted bool) string {
	cards := make([]string, 0, len(swatches))
	for _, s := range swatches {
		cards = append(cards, Render(s, painted))
	}
	if !painted {
		return strings.Join(cards, "\n\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
