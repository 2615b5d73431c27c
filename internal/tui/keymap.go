// SPDX-License-Identifier: MIT
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the interactive bar
type KeyMap struct {
	Refresh       key.Binding
	RefreshFirst  key.Binding
	RefreshSecond key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r", " ", "enter"),
			key.WithHelp("r/space", "new colors"),
		),
		RefreshFirst: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "new first color"),
		),
		RefreshSecond: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "new second color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.RefreshFirst, k.RefreshSecond, k.Quit}
}
