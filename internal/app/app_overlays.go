package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clicksnitch/internal/ui/components"
	"github.com/sadopc/clicksnitch/internal/ui/msgs"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

func (a *App) openHelp() {
	restore := a.mode
	a.help.SetSize(a.width, a.height)
	a.help.Open(restore)
	a.setMode(msgs.ModeModal)
}

func (a *App) confirmClear() {
	restore := a.mode
	a.modal.Show("Clear recent scans?", "Every stored scan will be removed.", msgs.ClearHistoryMsg{}, restore)
	a.setMode(msgs.ModeModal)
}

func (a App) clearHistory() (tea.Model, tea.Cmd) {
	if err := a.history.Clear(); err != nil {
		a.log.WithError(err).Error("clearing scan history")
		return a, a.toast.Show("Clear failed: "+err.Error(), true, 3*time.Second)
	}
	a.orch.ShowHistory()
	return a, a.toast.Show("Recent scans cleared", false, 2*time.Second)
}

func (a App) copySelected() (tea.Model, tea.Cmd) {
	r, ok := a.recent.Selected()
	if !ok {
		return a, a.toast.Show("No scans to copy", true, 2*time.Second)
	}
	if err := a.copy(r.URL); err != nil {
		return a, a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
	}
	return a, a.toast.Show("Copied "+r.URL, false, 2*time.Second)
}

func (a App) cycleTheme() (tea.Model, tea.Cmd) {
	t := theme.Next(a.theme.Name)
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s

	a.gauge.SetTheme(t, s)
	a.recent.SetTheme(t, s)
	if a.dashboard != nil {
		a.dashboard.SetTheme(t, s)
	}
	a.spinner.Style = lipgloss.NewStyle().Foreground(t.Accent)

	sb := components.NewStatusBar(t)
	sb.SetEndpoint(a.statusBar.Endpoint())
	if at, elapsed := a.statusBar.LastScan(); !at.IsZero() {
		sb.SetLastScan(at, elapsed)
	}
	sb.SetMode(a.mode)
	a.statusBar = sb
	a.help = components.NewHelp(t)
	a.modal = components.NewModal(t)
	a.toast = components.NewToast(t)
	a.relayout()

	return a, a.toast.Show("Theme: "+t.Name, false, 2*time.Second)
}
