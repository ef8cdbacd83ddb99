package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Task Actions
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Toggle    key.Binding
	Priority  key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Sort      key.Binding
	HideDone  key.Binding
	Detail    key.Binding
	ClearDone key.Binding

	// Tabs
	NextTab   key.Binding
	PrevTab   key.Binding
	NewTab    key.Binding
	EditTab   key.Binding
	DeleteTab key.Binding

	// Views
	ListView key.Binding
	SortView key.Binding
	SetsView key.Binding

	// General
	ThemeCycle key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),

		// Task Actions
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle done"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		HideDone: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide done"),
		),
		Detail: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "detail"),
		),
		ClearDone: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete done"),
		),

		// Tabs
		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("S-tab", "prev tab"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "new tab"),
		),
		EditTab: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "edit tab"),
		),
		DeleteTab: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete tab"),
		),

		// Views
		ListView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "tasks"),
		),
		SortView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort"),
		),
		SetsView: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "task sets"),
		),

		// General
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
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
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Edit, k.Delete, k.Toggle},
		{k.Priority, k.MoveUp, k.MoveDown, k.Sort},
		{k.HideDone, k.Detail, k.ClearDone},
		{k.NextTab, k.PrevTab, k.NewTab, k.EditTab, k.DeleteTab},
		{k.ListView, k.SortView, k.SetsView},
		{k.ThemeCycle, k.Help, k.Quit},
	}
}
