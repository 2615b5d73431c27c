// SPDX-License-Identifier: MIT
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/colorbar/internal/swatch"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Padding(0, 2)

// Model is the bubbletea model for the interactive color bars
type Model struct {
	bars   []*swatch.Bar
	keys   KeyMap
	plain  bool
	logger *slog.Logger
}

// NewModel creates a model over already initialized bars
func NewModel(bars []*swatch.Bar, plain bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		bars:   bars,
		keys:   DefaultKeyMap(),
		plain:  plain,
		logger: logger,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Refresh):
		for i := range m.bars {
			m.refresh(i)
		}
	case key.Matches(keyMsg, m.keys.RefreshFirst):
		m.refresh(0)
	case key.Matches(keyMsg, m.keys.RefreshSecond):
		m.refresh(1)
	}
	return m, nil
}

func (m Model) refresh(i int) {
	if i >= len(m.bars) {
		return
	}
	bar := m.bars[i]
	c := bar.Refresh()
	m.logger.Debug("refreshed color", "theme", bar.Theme().String(), "hsl", c.HSL(), "hex", c.Hex())
}

// View implements tea.Model
func (m Model) View() string {
	swatches := make([]swatch.Swatch, 0, len(m.bars))
	for _, bar := range m.bars {
		swatches = append(swatches, bar.Snapshot())
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	return swatch.RenderRow(swatches, !m.plain) + "\n" + helpStyle.Render(strings.Join(help, " • ")) + "\n"
}
