package app

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/sadopc/clicksnitch/internal/core/history"
	"github.com/sadopc/clicksnitch/internal/gauge"
	"github.com/sadopc/clicksnitch/internal/logging"
	"github.com/sadopc/clicksnitch/internal/scan"
	"github.com/sadopc/clicksnitch/internal/ui/components"
	"github.com/sadopc/clicksnitch/internal/ui/layout"
	"github.com/sadopc/clicksnitch/internal/ui/msgs"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

// Deps are the collaborators the TUI drives.
type Deps struct {
	Classifier scan.Classifier
	History    *history.Store
	Endpoint   string
	Theme      theme.Theme
	Logger     logrus.FieldLogger
	// HideDashboard drops the mirrored recent-scan list entirely.
	HideDashboard bool
}

// App is the root Bubble Tea model.
type App struct {
	input     textinput.Model
	spinner   spinner.Model
	gauge     *components.Gauge
	recent    *components.RecentList
	dashboard *components.RecentList

	statusBar components.StatusBar
	help      components.Help
	toast     components.Toast
	modal     components.Modal

	orch    *scan.Orchestrator
	history *history.Store
	log     logrus.FieldLogger
	copy    func(string) error
	now     func() time.Time

	pending   int
	scanStart time.Time

	mode          msgs.AppMode
	showDashboard bool
	layout        layout.ScreenLayout
	keys          KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model and renders the stored history.
func New(deps Deps) App {
	t := deps.Theme
	if t.Name == "" {
		t = theme.Default()
	}
	s := theme.NewStyles(t)

	log := deps.Logger
	if log == nil {
		log = logging.Discard()
	}

	input := textinput.New()
	input.Placeholder = "https://example.com/login"
	input.Prompt = "URL ❯ "
	input.CharLimit = 2048
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Accent)

	a := App{
		input:   input,
		spinner: sp,
		gauge:   components.NewGauge(t, s, components.AllRegions()),
		recent:  components.NewRecentList("Recent Scans", t, s),

		statusBar: components.NewStatusBar(t),
		help:      components.NewHelp(t),
		toast:     components.NewToast(t),
		modal:     components.NewModal(t),

		history: deps.History,
		log:     log,
		copy:    clipboard.WriteAll,
		now:     time.Now,

		mode: msgs.ModeInsert,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}

	// The mirror must stay an untyped nil when absent.
	var mirror scan.HistoryRenderer
	if !deps.HideDashboard {
		a.dashboard = components.NewRecentList("Dashboard", t, s)
		a.showDashboard = true
		mirror = a.dashboard
	}

	a.orch = scan.New(deps.Classifier, deps.History,
		scan.WithGauge(a.gauge),
		scan.WithHistoryRenderers(a.recent, mirror),
		scan.WithLogger(log),
	)

	a.statusBar.SetEndpoint(deps.Endpoint)
	a.gauge.RenderGauge(gauge.Prompt)
	if records, _ := a.orch.ShowHistory(); len(records) > 0 {
		if at, ok := records[0].ScannedAt(); ok {
			a.statusBar.SetLastScan(at, 0)
		}
	}

	return a
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case msgs.ScanMsg:
		return a.startScan(a.input.Value())

	case msgs.ScanDoneMsg:
		return a.finishScan(msg)

	case msgs.ClearHistoryMsg:
		return a.clearHistory()

	case msgs.CopyURLMsg:
		return a.copySelected()

	case msgs.ShowHelpMsg:
		a.openHelp()
		return a, nil

	case msgs.SetModeMsg:
		return a, a.setMode(msg.Mode)

	case msgs.StatusMsg:
		return a, a.statusBar.SetMessage(msg.Text, msg.Duration)

	case msgs.ToastMsg:
		return a, a.toast.Show(msg.Text, msg.IsError, msg.Duration)

	case spinner.TickMsg:
		if a.pending == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if a.mode == msgs.ModeInsert {
		a.input, cmd = a.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// setMode switches between the URL input, the recent-scan list and overlays.
func (a *App) setMode(mode msgs.AppMode) tea.Cmd {
	a.mode = mode
	a.statusBar.SetMode(mode)

	switch mode {
	case msgs.ModeInsert:
		a.recent.SetFocused(false)
		return a.input.Focus()
	case msgs.ModeNormal:
		a.input.Blur()
		a.recent.SetFocused(true)
	default:
		a.input.Blur()
	}
	return nil
}

func (a *App) relayout() {
	a.layout = layout.Calculate(a.width, a.height, a.showDashboard && a.dashboard != nil)

	inner := a.layout.ScanWidth - 4
	a.input.Width = inner - lipgloss.Width(a.input.Prompt) - 1
	a.recent.SetWidth(inner)
	if a.dashboard != nil {
		a.dashboard.SetWidth(a.layout.DashboardWidth - 4)
	}
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.styles.Title.Render(" ClickSnitch") + a.styles.Muted.Render("  phishing URL checker")

	status := a.gauge.View()
	if a.pending > 0 {
		status = lipgloss.JoinVertical(lipgloss.Center, status, a.spinner.View()+" "+a.styles.Hint.Render("waiting for verdict"))
	}

	inputBox := a.styles.UnfocusedBorder
	if a.mode == msgs.ModeInsert {
		inputBox = a.styles.FocusedBorder
	}
	listBox := a.styles.UnfocusedBorder
	if a.mode == msgs.ModeNormal {
		listBox = a.styles.FocusedBorder
	}

	inner := a.layout.ScanWidth - 2
	scanPanel := lipgloss.JoinVertical(lipgloss.Left,
		inputBox.Width(inner).Render(a.input.View()),
		lipgloss.PlaceHorizontal(a.layout.ScanWidth, lipgloss.Center, status),
		listBox.Width(inner).Render(a.recent.View()),
	)

	body := scanPanel
	if a.layout.DashboardVisible && a.dashboard != nil {
		dash := a.styles.UnfocusedBorder.
			Width(a.layout.DashboardWidth - 2).
			Height(a.layout.ContentHeight - 2).
			Render(a.dashboard.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, scanPanel, dash)
	}

	body = lipgloss.NewStyle().Height(a.layout.ContentHeight).MaxHeight(a.layout.ContentHeight).Render(body)
	main := lipgloss.JoinVertical(lipgloss.Left, header, body, a.statusBar.View())

	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.modal.Visible {
		main = overlayCenter(main, a.modal.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	gap := width - lipgloss.Width(overlay) - 2
	if gap < 0 {
		gap = 0
	}
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
