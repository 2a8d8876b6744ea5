package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"

	"github.com/sadopc/clicksnitch/internal/core/history"
	"github.com/sadopc/clicksnitch/internal/gauge"
	"github.com/sadopc/clicksnitch/internal/scan"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

// Report is the JSON form of a scan.
type Report struct {
	URL        string           `json:"url"`
	Result     string           `json:"result,omitempty"`
	State      StateReport      `json:"state"`
	History    []history.Record `json:"history"`
	Error      string           `json:"error,omitempty"`
	StoreError string           `json:"store_error,omitempty"`
}

// StateReport is the JSON form of a gauge state.
type StateReport struct {
	Label  string `json:"label"`
	Class  string `json:"class"`
	Symbol string `json:"symbol"`
}

func newReport(out scan.Outcome, records []history.Record) Report {
	r := Report{
		URL:    out.URL,
		Result: out.Result,
		State: StateReport{
			Label:  out.State.Label,
			Class:  out.State.Class,
			Symbol: out.State.Symbol,
		},
		History: records,
	}
	if r.History == nil {
		r.History = []history.Record{}
	}
	if out.Err != nil {
		r.Error = out.Err.Error()
	}
	if out.StoreErr != nil {
		r.StoreError = out.StoreErr.Error()
	}
	return r
}

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}

// PrintScan writes the gauge line followed by the recent-scan list. The list
// is omitted when the scan did not record anything.
func PrintScan(w io.Writer, s gauge.State, records []history.Record, scanErr, storeErr error) {
	styles := newTextStyles(w)

	fmt.Fprintf(w, "%s  %s\n", styles.class(s.Class).Render("["+s.Symbol+"]"), styles.class(s.Class).Render(s.StatusText()))
	if scanErr != nil {
		fmt.Fprintf(w, "  └ %s\n", scanErr)
	}
	if storeErr != nil {
		fmt.Fprintf(w, "  └ scan not saved: %s\n", storeErr)
	}
	if records != nil {
		fmt.Fprintln(w)
		printRecords(w, styles, records)
	}
}

// PrintHistory writes the recent-scan list.
func PrintHistory(w io.Writer, records []history.Record) {
	printRecords(w, newTextStyles(w), records)
}

func printRecords(w io.Writer, styles textStyles, records []history.Record) {
	fmt.Fprintln(w, styles.title.Render("Recent Scans"))
	if len(records) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "  %s %s\n", r.URL, styles.result(r.Result).Render("["+r.Result+"]"))
		fmt.Fprintf(w, "    %s\n", styles.muted.Render(r.Time))
	}
}

// textStyles colors plain-text output when w is a color terminal.
type textStyles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	danger lipgloss.Style
	safe   lipgloss.Style
	plain  lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	re := lipgloss.NewRenderer(w)
	t := theme.Default()
	return textStyles{
		title:  re.NewStyle().Bold(true),
		muted:  re.NewStyle().Foreground(t.Muted),
		danger: re.NewStyle().Foreground(t.Danger).Bold(true),
		safe:   re.NewStyle().Foreground(t.Safe).Bold(true),
		plain:  re.NewStyle(),
	}
}

func (s textStyles) class(c string) lipgloss.Style {
	switch c {
	case gauge.ClassDanger:
		return s.danger
	case gauge.ClassSafe:
		return s.safe
	default:
		return s.plain
	}
}

func (s textStyles) result(r string) lipgloss.Style {
	if r == gauge.ResultPhishing {
		return s.danger
	}
	return s.safe
}
