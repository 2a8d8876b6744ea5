package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clicksnitch/internal/ui/msgs"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

// Modal is a confirm dialog. Closing it restores the mode it was opened from.
type Modal struct {
	Visible   bool
	Title     string
	Message   string
	onConfirm tea.Msg
	restore   msgs.AppMode
	focusOK   bool
	theme     theme.Theme
}

// NewModal creates a new modal dialog.
func NewModal(t theme.Theme) Modal {
	return Modal{theme: t, focusOK: true}
}

// Show displays the modal. onConfirm is emitted when OK is chosen.
func (m *Modal) Show(title, message string, onConfirm tea.Msg, restore msgs.AppMode) {
	m.Visible = true
	m.Title = title
	m.Message = message
	m.onConfirm = onConfirm
	m.restore = restore
	m.focusOK = true
}

// Update implements tea.Model.
func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	restore := func() tea.Msg { return msgs.SetModeMsg{Mode: m.restore} }
	switch km.String() {
	case "esc", "n":
		m.Visible = false
		return m, restore
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.focusOK = !m.focusOK
	case "y":
		m.focusOK = true
		fallthrough
	case "enter":
		m.Visible = false
		if m.focusOK && m.onConfirm != nil {
			confirm := m.onConfirm
			return m, tea.Batch(restore, func() tea.Msg { return confirm })
		}
		return m, restore
	}
	return m, nil
}

// View renders the modal dialog.
func (m Modal) View() string {
	if !m.Visible {
		return ""
	}

	boxWidth := 50

	titleStyle := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(boxWidth - 4).
		Align(lipgloss.Center)

	messageStyle := lipgloss.NewStyle().
		Foreground(m.theme.Subtext).
		Width(boxWidth - 4).
		Align(lipgloss.Center)

	active := lipgloss.NewStyle().Padding(0, 3).Foreground(m.theme.Base).Bold(true)
	inactive := lipgloss.NewStyle().Padding(0, 3).Background(m.theme.Overlay).Foreground(m.theme.Subtext)

	okStyle, cancelStyle := inactive, active.Background(m.theme.Danger)
	if m.focusOK {
		okStyle, cancelStyle = active.Background(m.theme.Accent), inactive
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		okStyle.Render("OK"),
		"  ",
		cancelStyle.Render("Cancel"),
	)

	buttonsRow := lipgloss.NewStyle().
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Render(buttons)

	content := titleStyle.Render(m.Title) + "\n\n" +
		messageStyle.Render(m.Message) + "\n\n" +
		buttonsRow

	return lipgloss.NewStyle().
		Width(boxWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)
}
