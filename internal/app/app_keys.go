package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/clicksnitch/internal/ui/msgs"
)

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.help.Visible {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}
	if a.modal.Visible {
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.ClearHistory):
		a.confirmClear()
		return a, nil
	}

	if a.mode == msgs.ModeInsert {
		return a.handleInsertKey(msg)
	}
	return a.handleNormalKey(msg)
}

func (a App) handleInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Scan):
		return a.startScan(a.input.Value())
	case key.Matches(msg, a.keys.LeaveInput), key.Matches(msg, a.keys.CycleFocus):
		return a, a.setMode(msgs.ModeNormal)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.QuitNormal):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.openHelp()
		return a, nil
	case key.Matches(msg, a.keys.FocusInput), key.Matches(msg, a.keys.CycleFocus):
		return a, a.setMode(msgs.ModeInsert)
	case key.Matches(msg, a.keys.Scan):
		r, ok := a.recent.Selected()
		if !ok {
			return a, nil
		}
		a.input.SetValue(r.URL)
		return a.startScan(r.URL)
	case key.Matches(msg, a.keys.CopyURL):
		return a.copySelected()
	case key.Matches(msg, a.keys.ToggleDashboard):
		if a.dashboard != nil {
			a.showDashboard = !a.showDashboard
			a.relayout()
		}
		return a, nil
	case key.Matches(msg, a.keys.CycleTheme):
		return a.cycleTheme()
	}

	return a, a.recent.Update(msg)
}
