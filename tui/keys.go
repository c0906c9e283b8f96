package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Area     key.Binding
	PrevArea key.Binding
	NextArea key.Binding
	Day      key.Binding
	Refresh  key.Binding
	Up       key.Binding
	Down     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Area, k.Day, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Area, k.PrevArea, k.NextArea},
		{k.Day, k.Refresh},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Area: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "area"),
	),
	PrevArea: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev area"),
	),
	NextArea: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next area"),
	),
	Day: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today/tomorrow"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
