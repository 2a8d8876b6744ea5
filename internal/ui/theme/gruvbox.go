package theme

import "github.com/charmbracelet/lipgloss"

var GruvboxDark = Theme{
	Name:    "Gruvbox Dark",
	Base:    lipgloss.Color("#282828"),
	Surface: lipgloss.Color("#3c3836"),
	Overlay: lipgloss.Color("#504945"),

	Text:    lipgloss.Color("#ebdbb2"),
	Subtext: lipgloss.Color("#d5c4a1"),
	Muted:   lipgloss.Color("#665c54"),

	Accent: lipgloss.Color("#d3869b"),
	Info:   lipgloss.Color("#83a598"),

	Danger:          lipgloss.Color("#fb4934"),
	Safe:            lipgloss.Color("#b8bb26"),
	Warning:         lipgloss.Color("#fabd2f"),
	BorderFocused:   lipgloss.Color("#fe8019"),
	BorderUnfocused: lipgloss.Color("#665c54"),
}
