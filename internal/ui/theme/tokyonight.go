package theme

import "github.com/charmbracelet/lipgloss"

var TokyoNight = Theme{
	Name:    "Tokyo Night",
	Base:    lipgloss.Color("#1a1b26"),
	Surface: lipgloss.Color("#292e42"),
	Overlay: lipgloss.Color("#3b4261"),

	Text:    lipgloss.Color("#c0caf5"),
	Subtext: lipgloss.Color("#a9b1d6"),
	Muted:   lipgloss.Color("#565f89"),

	Accent: lipgloss.Color("#bb9af7"),
	Info:   lipgloss.Color("#7aa2f7"),

	Danger:          lipgloss.Color("#f7768e"),
	Safe:            lipgloss.Color("#9ece6a"),
	Warning:         lipgloss.Color("#e0af68"),
	BorderFocused:   lipgloss.Color("#7aa2f7"),
	BorderUnfocused: lipgloss.Color("#565f89"),
}
