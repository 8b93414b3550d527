// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the chunk pager.
type KeyMap struct {
	// Quit exits the pager.
	Quit key.Binding

	// NextChunk moves to the next chunk.
	NextChunk key.Binding

	// PrevChunk moves to the previous chunk.
	PrevChunk key.Binding

	// Up scrolls the current chunk up.
	Up key.Binding

	// Down scrolls the current chunk down.
	Down key.Binding

	// Top jumps to the start of the current chunk.
	Top key.Binding

	// Bottom jumps to the end of the current chunk.
	Bottom key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextChunk: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next chunk"),
		),
		PrevChunk: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous chunk"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
	}
}
