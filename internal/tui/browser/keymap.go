package browser

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the browser keybindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextMode   key.Binding
	PrevMode   key.Binding
	NextLockup key.Binding
	Casing     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous brand"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next brand"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m/tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("M", "shift+tab"),
			key.WithHelp("M", "previous mode"),
		),
		NextLockup: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next lockup"),
		),
		Casing: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle casing"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.NextLockup, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.NextLockup, k.Casing},
		{k.Help, k.Quit},
	}
}
