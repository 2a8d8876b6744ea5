package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/clicksnitch/internal/ui/msgs"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	endpoint string
	lastScan time.Time
	elapsed  time.Duration
	mode     msgs.AppMode
	message  string
	width    int
	now      func() time.Time
	theme    theme.Theme
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme) StatusBar {
	return StatusBar{
		theme: t,
		mode:  msgs.ModeInsert,
		now:   time.Now,
	}
}

// SetEndpoint sets the classification endpoint shown on the left.
func (m *StatusBar) SetEndpoint(endpoint string) {
	m.endpoint = endpoint
}

// Endpoint returns the endpoint shown on the left.
func (m StatusBar) Endpoint() string {
	return m.endpoint
}

// LastScan returns when the latest scan finished and how long it took.
func (m StatusBar) LastScan() (time.Time, time.Duration) {
	return m.lastScan, m.elapsed
}

// SetLastScan records when the latest scan finished and how long it took.
func (m *StatusBar) SetLastScan(at time.Time, elapsed time.Duration) {
	m.lastScan = at
	m.elapsed = elapsed
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message. A positive duration clears it
// automatically.
func (m *StatusBar) SetMessage(text string, d time.Duration) tea.Cmd {
	m.message = text
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Message returns the temporary status message.
func (m StatusBar) Message() string {
	return m.message
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	if _, ok := msg.(clearStatusMsg); ok {
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	bg := lipgloss.NewStyle().Background(m.theme.Surface)
	barStyle := bg.Foreground(m.theme.Text).Width(m.width)

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, bg.Foreground(m.theme.Text).Render(m.message))
	} else {
		if m.endpoint != "" {
			leftParts = append(leftParts, bg.Foreground(m.theme.Info).Render(m.endpoint))
		}
		if !m.lastScan.IsZero() {
			last := "scanned " + humanize.RelTime(m.lastScan, m.now(), "ago", "from now")
			if m.elapsed > 0 {
				last += " in " + formatDuration(m.elapsed)
			}
			leftParts = append(leftParts, bg.Foreground(m.theme.Subtext).Render(last))
		}
	}
	left := strings.Join(leftParts, " │ ")

	modeStr := bg.Foreground(m.theme.Accent).Bold(true).Render("[" + m.mode.String() + "]")
	hint := bg.Foreground(m.theme.Muted).Render("?:help  Ctrl+C:quit")

	totalContent := lipgloss.Width(left) + lipgloss.Width(modeStr) + lipgloss.Width(hint)
	if totalContent+2 >= m.width {
		return barStyle.Render(" " + left + " " + modeStr + " " + hint)
	}

	remaining := m.width - totalContent - 2
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
