package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shown in the help line.
type keyMap struct {
	Increment key.Binding
	Reload    key.Binding
	Copy      key.Binding
	Focus     key.Binding
	Submit    key.Binding
	Blur      key.Binding
	Older     key.Binding
	Newer     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(
			key.WithKeys("+", " ", "space"),
			key.WithHelp("+/space", "increment"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "reload"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy name"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "url form"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load url"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "leave form"),
		),
		Older: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "history"),
		),
		Newer: key.NewBinding(
			key.WithKeys("down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Focus, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Reload, k.Copy},
		{k.Focus, k.Submit, k.Blur, k.Older},
		{k.Help, k.Quit},
	}
}
