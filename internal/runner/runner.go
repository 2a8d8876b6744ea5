// Package runner performs scans without the TUI and prints the outcome.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/sadopc/clicksnitch/internal/core/history"
	"github.com/sadopc/clicksnitch/internal/gauge"
	"github.com/sadopc/clicksnitch/internal/logging"
	"github.com/sadopc/clicksnitch/internal/scan"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Process exit codes for a scan.
const (
	ExitLegitimate = 0
	ExitPhishing   = 1
	ExitError      = 2
	ExitUnknown    = 3
)

// Store is the history the runner reads and writes.
type Store interface {
	scan.History
	Clear() error
	Search(query string) ([]history.Record, error)
}

// Config holds runner configuration.
type Config struct {
	Format string
	Logger logrus.FieldLogger
}

// Runner executes scans headlessly (no TUI).
type Runner struct {
	classifier scan.Classifier
	store      Store
	format     string
	log        logrus.FieldLogger
}

// New creates a runner.
func New(c scan.Classifier, s Store, cfg Config) (*Runner, error) {
	format := cfg.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Runner{classifier: c, store: s, format: format, log: log}, nil
}

// Scan checks one URL, writes the outcome to w and returns the exit code.
func (r *Runner) Scan(ctx context.Context, w io.Writer, input string) (int, error) {
	g := &gaugeCapture{}
	l := &listCapture{}
	o := scan.New(r.classifier, r.store,
		scan.WithGauge(g),
		scan.WithHistoryRenderers(l),
		scan.WithLogger(r.log),
	)

	out := o.Scan(ctx, input)

	var err error
	if r.format == FormatJSON {
		err = PrintJSON(w, newReport(out, l.records))
	} else {
		PrintScan(w, g.state, l.records, out.Err, out.StoreErr)
	}
	if err != nil {
		return ExitError, err
	}
	return ExitCode(out), nil
}

// History writes the stored list, narrowed by a fuzzy query when one is given.
func (r *Runner) History(w io.Writer, query string) error {
	var (
		records []history.Record
		err     error
	)
	if query != "" {
		records, err = r.store.Search(query)
	} else {
		records, err = r.store.List()
	}
	if err != nil {
		return err
	}

	if r.format == FormatJSON {
		return PrintJSON(w, records)
	}
	PrintHistory(w, records)
	return nil
}

// ClearHistory removes every stored record.
func (r *Runner) ClearHistory(w io.Writer) error {
	if err := r.store.Clear(); err != nil {
		return err
	}
	if r.format == FormatJSON {
		return PrintJSON(w, []history.Record{})
	}
	fmt.Fprintln(w, "Recent scans cleared.")
	return nil
}

// ExitCode maps a scan outcome to a process exit code.
func ExitCode(out scan.Outcome) int {
	switch {
	case !out.Sent(), out.Err != nil:
		return ExitError
	case out.Result == gauge.ResultPhishing:
		return ExitPhishing
	case out.Result == gauge.ResultLegitimate:
		return ExitLegitimate
	default:
		return ExitUnknown
	}
}

type gaugeCapture struct {
	state gauge.State
}

func (g *gaugeCapture) RenderGauge(s gauge.State) { g.state = s }

type listCapture struct {
	records []history.Record
}

func (l *listCapture) RenderHistory(r []history.Record) { l.records = r }
