package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sadopc/clicksnitch/internal/core/history"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

// RecentList shows the recent-scan list: URL, colored result tag and the
// scan time on a second line.
type RecentList struct {
	title   string
	records []history.Record
	cursor  int
	focused bool
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewRecentList creates an empty list with a title.
func NewRecentList(title string, t theme.Theme, s theme.Styles) *RecentList {
	return &RecentList{title: title, theme: t, styles: s}
}

// SetTheme swaps the colors used for drawing.
func (m *RecentList) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// RenderHistory replaces the displayed records.
func (m *RecentList) RenderHistory(records []history.Record) {
	m.records = append(m.records[:0:0], records...)
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Records returns the displayed records.
func (m *RecentList) Records() []history.Record {
	return m.records
}

// Selected returns the record under the cursor.
func (m *RecentList) Selected() (history.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return history.Record{}, false
	}
	return m.records[m.cursor], true
}

// SetFocused toggles the cursor highlight.
func (m *RecentList) SetFocused(f bool) { m.focused = f }

// SetWidth sets the available width.
func (m *RecentList) SetWidth(w int) { m.width = w }

// Update handles cursor movement.
func (m *RecentList) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch km.String() {
	case "j", "down":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.records) > 0 {
			m.cursor = len(m.records) - 1
		}
	}
	return nil
}

// Lines renders every record without any selection highlight.
func (m *RecentList) Lines() []string {
	lines := make([]string, 0, len(m.records))
	for _, r := range m.records {
		lines = append(lines, m.renderRecord(r))
	}
	return lines
}

// View renders the titled list.
func (m *RecentList) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	if len(m.records) == 0 {
		b.WriteString(m.styles.Hint.Render("No scans yet"))
		return b.String()
	}

	for i, line := range m.Lines() {
		if m.focused && i == m.cursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		if i < len(m.records)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *RecentList) renderRecord(r history.Record) string {
	tag := lipgloss.NewStyle().
		Foreground(m.theme.ResultColor(r.Result)).
		Render("[" + r.Result + "]")

	url := r.URL
	if m.width > 0 {
		url = truncate(url, m.width-lipgloss.Width(tag)-1)
	}

	return m.styles.URL.Render(url) + " " + tag + "\n" + m.styles.Timestamp.Render(r.Time)
}

// truncate shortens s to maxW terminal cells without splitting a rune.
func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxW {
		return s
	}
	if maxW > 3 {
		return ansi.Truncate(s, maxW, "...")
	}
	return ansi.Truncate(s, maxW, "")
}
