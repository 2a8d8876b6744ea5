package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Panel borders
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Text styles
	Title   lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	URL     lipgloss.Style
	Key     lipgloss.Style
	Hint    lipgloss.Style

	// Scan results
	Danger lipgloss.Style
	Safe   lipgloss.Style

	// Components
	StatusBar  lipgloss.Style
	StatusText lipgloss.Style
	Timestamp  lipgloss.Style
	Selected   lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Normal:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Bold:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Danger),
		Success: lipgloss.NewStyle().Foreground(t.Safe),
		URL:     lipgloss.NewStyle().Foreground(t.Info),
		Key:     lipgloss.NewStyle().Foreground(t.Accent),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),

		Danger: lipgloss.NewStyle().Foreground(t.Danger).Bold(true),
		Safe:   lipgloss.NewStyle().Foreground(t.Safe).Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		Timestamp: lipgloss.NewStyle().Foreground(t.Subtext).Faint(true),
		Selected: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text),
	}
}
