package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Accent: lipgloss.Color("#cba6f7"),
	Info:   lipgloss.Color("#89b4fa"),

	Danger:          lipgloss.Color("#f38ba8"),
	Safe:            lipgloss.Color("#a6e3a1"),
	Warning:         lipgloss.Color("#f9e2af"),
	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}

	home, err := os.UserHomeDir()
	if err == nil {
		customDir := filepath.Join(home, ".config", "clicksnitch", "themes")
		customs := LoadCustomThemes(customDir)
		if t, ok := customs[normalizeKey(name)]; ok {
			return t
		}
	}

	return CatppuccinMocha
}
