package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add        key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	All        key.Binding
	Active     key.Binding
	Completed  key.Binding
	FocusList  key.Binding
	FocusInput key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d", "delete"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev filter"),
		),
		All: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		Active: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "active"),
		),
		Completed: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "completed"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("esc", "down"),
			key.WithHelp("esc", "tasks"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "new task"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// inputKeys is the help shown while typing.
type inputKeys struct{ k keyMap }

func (h inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Add, h.k.FocusList, h.k.NextFilter}
}

func (h inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// listKeys is the help shown while the task list has focus.
type listKeys struct{ k keyMap }

func (h listKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Toggle, h.k.Delete, h.k.FocusInput, h.k.NextFilter, h.k.Quit}
}

func (h listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Toggle, h.k.Delete},
		{h.k.All, h.k.Active, h.k.Completed, h.k.NextFilter, h.k.PrevFilter},
		{h.k.FocusInput, h.k.Quit},
	}
}
