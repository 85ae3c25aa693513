package tui

import "github.com/charmbracelet/bubbles/key"

// PlayKeyMap defines the key bindings for the game screen.
type PlayKeyMap struct {
	Roll    key.Binding
	Hold    key.Binding
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.Hold, k.Up, k.Down, k.Choose, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Roll, k.Hold, k.Choose},
		{k.Up, k.Down, k.NewGame, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Roll: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "roll"),
		),
		Hold: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "hold die"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev category"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next category"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "score category"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
