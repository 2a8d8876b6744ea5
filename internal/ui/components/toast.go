package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastDismissMsg dismisses the toast.
type toastDismissMsg struct{}

// Toast is an auto-dismiss notification.
type Toast struct {
	Visible  bool
	text     string
	isError  bool
	duration time.Duration
	theme    theme.Theme
}

// NewToast creates a new toast component.
func NewToast(t theme.Theme) Toast {
	return Toast{theme: t, duration: defaultToastDuration}
}

// Show displays a toast message and returns a Cmd for auto-dismiss.
func (m *Toast) Show(text string, isError bool, duration time.Duration) tea.Cmd {
	m.Visible = true
	m.text = text
	m.isError = isError
	m.duration = duration
	if m.duration <= 0 {
		m.duration = defaultToastDuration
	}
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return toastDismissMsg{}
	})
}

// Text returns the message currently shown.
func (m Toast) Text() string {
	return m.text
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if _, ok := msg.(toastDismissMsg); ok {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the toast notification.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	fg := m.theme.Safe
	if m.isError {
		fg = m.theme.Danger
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Render(m.text)
}
