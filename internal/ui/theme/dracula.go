package theme

import "github.com/charmbracelet/lipgloss"

var Dracula = Theme{
	Name:    "Dracula",
	Base:    lipgloss.Color("#282a36"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#bfbfbf"),
	Muted:   lipgloss.Color("#6272a4"),

	Accent: lipgloss.Color("#bd93f9"),
	Info:   lipgloss.Color("#8be9fd"),

	Danger:          lipgloss.Color("#ff5555"),
	Safe:            lipgloss.Color("#50fa7b"),
	Warning:         lipgloss.Color("#f1fa8c"),
	BorderFocused:   lipgloss.Color("#bd93f9"),
	BorderUnfocused: lipgloss.Color("#6272a4"),
}
