package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clicksnitch/internal/ui/msgs"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

type helpSection struct {
	Title    string
	Bindings []helpBinding
}

type helpBinding struct {
	Key  string
	Desc string
}

var helpSections = []helpSection{
	{
		Title: "General",
		Bindings: []helpBinding{
			{"Ctrl+C", "Quit application"},
			{"?", "Toggle this help"},
			{"Tab", "Switch between URL input and recent scans"},
			{"Ctrl+L", "Clear recent scans"},
		},
	},
	{
		Title: "URL input",
		Bindings: []helpBinding{
			{"Enter", "Scan the entered URL"},
			{"Esc", "Leave the input"},
		},
	},
	{
		Title: "Recent scans",
		Bindings: []helpBinding{
			{"j / k", "Move cursor down / up"},
			{"g / G", "First / last scan"},
			{"Enter", "Rescan selected URL"},
			{"y", "Copy selected URL"},
			{"i", "Back to URL input"},
			{"q", "Quit"},
		},
	},
}

// Help is a help overlay showing keybindings.
type Help struct {
	Visible  bool
	viewport viewport.Model
	restore  msgs.AppMode
	theme    theme.Theme
	width    int
	height   int
	ready    bool
}

// NewHelp creates a new help overlay.
func NewHelp(t theme.Theme) Help {
	return Help{theme: t}
}

// SetSize sets the terminal dimensions for centering.
func (m *Help) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Open shows the overlay. Closing it restores the given mode.
func (m *Help) Open(restore msgs.AppMode) {
	m.Visible = true
	m.restore = restore
	m.buildViewport()
}

func (m *Help) buildViewport() {
	boxWidth := 60
	contentWidth := boxWidth - 6

	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Bold(true).
		Width(12).
		Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	sectionStyle := lipgloss.NewStyle().
		Foreground(m.theme.Info).
		Bold(true).
		MarginTop(1)
	sepStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var lines []string
	for _, section := range helpSections {
		lines = append(lines, sectionStyle.Render(section.Title))
		lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))
		for _, b := range section.Bindings {
			lines = append(lines, keyStyle.Render(b.Key)+sepStyle.Render(" │ ")+descStyle.Render(b.Desc))
		}
	}

	vpHeight := m.height - 8
	if vpHeight < 10 {
		vpHeight = 10
	}

	m.viewport = viewport.New(contentWidth, vpHeight)
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.ready = true
}

// Update implements tea.Model.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "?", "q":
			m.Visible = false
			restore := m.restore
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: restore} }
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}
	if !m.ready {
		m.buildViewport()
	}

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(54).
		Align(lipgloss.Center).
		Render("Keyboard Shortcuts")

	return lipgloss.NewStyle().
		Width(60).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(title + "\n\n" + m.viewport.View())
}
