package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/clicksnitch/internal/ui/msgs"
)

// startScan shows the scanning state and issues the classification request
// in the background. Empty input only shows the prompt. Overlapping scans
// are not serialized; whichever response arrives last sets the gauge.
func (a App) startScan(input string) (tea.Model, tea.Cmd) {
	url, ok := a.orch.Begin(input)
	if !ok {
		return a, nil
	}

	a.pending++
	a.scanStart = a.now()
	a.log.WithField("url", url).Debug("scan started")

	orch := a.orch
	cmds := []tea.Cmd{func() tea.Msg {
		result, err := orch.Classify(context.Background(), url)
		return msgs.ScanDoneMsg{URL: url, Result: result, Err: err}
	}}
	if a.pending == 1 {
		cmds = append(cmds, a.spinner.Tick)
	}
	return a, tea.Batch(cmds...)
}

func (a App) finishScan(msg msgs.ScanDoneMsg) (tea.Model, tea.Cmd) {
	if a.pending > 0 {
		a.pending--
	}

	out := a.orch.Finish(msg.URL, msg.Result, msg.Err)
	now := a.now()
	a.statusBar.SetLastScan(now, now.Sub(a.scanStart))

	switch {
	case out.Err != nil:
		return a, a.toast.Show("Backend Error: "+out.Err.Error(), true, 5*time.Second)
	case out.StoreErr != nil:
		return a, a.toast.Show("Scan not saved: "+out.StoreErr.Error(), true, 5*time.Second)
	}
	return a, nil
}
