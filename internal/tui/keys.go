package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo's key bindings.
type KeyMap struct {
	Toggle   key.Binding
	Open     key.Binding
	Close    key.Binding
	SnapUp   key.Binding
	SnapDown key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "close"),
	),
	SnapUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "next snap point"),
	),
	SnapDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "previous snap point"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SnapUp, k.SnapDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Open, k.Close, k.Dismiss},
		{k.SnapUp, k.SnapDown},
		{k.Help, k.Quit},
	}
}
