package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit         key.Binding
	Scan         key.Binding
	ClearHistory key.Binding
	Help         key.Binding

	// Navigation
	CycleFocus      key.Binding
	FocusInput      key.Binding
	LeaveInput      key.Binding
	ToggleDashboard key.Binding

	// Recent scans
	CopyURL    key.Binding
	CycleTheme key.Binding
	QuitNormal key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Scan: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "scan"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear recent scans"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("i", "/"),
			key.WithHelp("i", "edit url"),
		),
		LeaveInput: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave input"),
		),
		ToggleDashboard: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dashboard"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "next theme"),
		),
		QuitNormal: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}
