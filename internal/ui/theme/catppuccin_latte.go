package theme

import "github.com/charmbracelet/lipgloss"

var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#9ca0b0"),

	Accent: lipgloss.Color("#8839ef"),
	Info:   lipgloss.Color("#1e66f5"),

	Danger:          lipgloss.Color("#d20f39"),
	Safe:            lipgloss.Color("#40a02b"),
	Warning:         lipgloss.Color("#df8e1d"),
	BorderFocused:   lipgloss.Color("#8839ef"),
	BorderUnfocused: lipgloss.Color("#9ca0b0"),
}
