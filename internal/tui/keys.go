package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// Gesture channel two: key paging normalized to a directional delta
	// alongside the mouse wheel.
	Forward  key.Binding
	Backward key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Next   key.Binding
	Retry  key.Binding
	Quit   key.Binding
}

var defaultKeyMap = keyMap{
	Forward: key.NewBinding(
		key.WithKeys("pgdown", " "),
		key.WithHelp("space", "open"),
	),
	Backward: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "close"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
