package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clicksnitch/internal/gauge"
)

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Accent lipgloss.Color
	Info   lipgloss.Color

	// Semantic
	Danger          lipgloss.Color
	Safe            lipgloss.Color
	Warning         lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
}

// ClassColor returns the color for a gauge style class. Unknown and empty
// classes use the neutral border color.
func (t Theme) ClassColor(class string) lipgloss.Color {
	switch class {
	case gauge.ClassDanger:
		return t.Danger
	case gauge.ClassSafe:
		return t.Safe
	default:
		return t.BorderUnfocused
	}
}

// ResultColor returns the tag color for a classification result in the
// recent-scan list: danger for phishing, safe for everything else.
func (t Theme) ResultColor(result string) lipgloss.Color {
	if result == gauge.ResultPhishing {
		return t.Danger
	}
	return t.Safe
}
