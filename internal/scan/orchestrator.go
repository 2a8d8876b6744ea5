// Package scan drives a single URL check: validate input, ask the
// classifier once, update the gauge and the recent-scan list.
package scan

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sadopc/clicksnitch/internal/core/history"
	"github.com/sadopc/clicksnitch/internal/gauge"
	"github.com/sadopc/clicksnitch/internal/logging"
)

// Classifier returns the backend's verdict for a URL.
type Classifier interface {
	Classify(ctx context.Context, url string) (string, error)
}

// History is the bounded recent-scan list.
type History interface {
	Add(r history.Record) ([]history.Record, error)
	List() ([]history.Record, error)
}

// GaugeRenderer displays a gauge state.
type GaugeRenderer interface {
	RenderGauge(s gauge.State)
}

// HistoryRenderer displays the recent-scan list.
type HistoryRenderer interface {
	RenderHistory(records []history.Record)
}

// Outcome describes what one scan did.
type Outcome struct {
	URL     string
	Result  string
	State   gauge.State
	Records []history.Record
	// Err is the classification failure, if any.
	Err error
	// StoreErr is set when the verdict could not be persisted.
	StoreErr error
}

// Sent reports whether a request was issued.
func (o Outcome) Sent() bool { return o.URL != "" }

// Orchestrator wires the classifier, the history and the render targets.
// Renderers are optional.
type Orchestrator struct {
	classifier Classifier
	history    History
	gauge      GaugeRenderer
	lists      []HistoryRenderer
	now        func() time.Time
	log        logrus.FieldLogger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithGauge sets the gauge render target.
func WithGauge(g GaugeRenderer) Option {
	return func(o *Orchestrator) { o.gauge = g }
}

// WithHistoryRenderers sets the list render targets. The first is the
// primary list, any further ones mirror it. Nil entries are skipped.
func WithHistoryRenderers(r ...HistoryRenderer) Option {
	return func(o *Orchestrator) { o.lists = r }
}

// WithClock overrides time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// New creates an Orchestrator.
func New(c Classifier, h History, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		classifier: c,
		history:    h,
		now:        time.Now,
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Begin validates raw input. Empty input shows the prompt state and returns
// ok=false; otherwise the scanning state is shown and the trimmed URL returned.
func (o *Orchestrator) Begin(input string) (url string, ok bool) {
	url = strings.TrimSpace(input)
	if url == "" {
		o.renderGauge(gauge.Prompt)
		return "", false
	}
	o.renderGauge(gauge.Scanning)
	return url, true
}

// Classify issues the single outbound request for url.
func (o *Orchestrator) Classify(ctx context.Context, url string) (string, error) {
	return o.classifier.Classify(ctx, url)
}

// Finish applies a classification to the gauge and, on success, records it
// and re-renders the history.
func (o *Orchestrator) Finish(url, result string, err error) Outcome {
	out := Outcome{URL: url, Result: result, Err: err}

	if err != nil {
		o.log.WithError(err).WithField("url", url).Warn("classification failed")
		out.Result = ""
		out.State = gauge.Error
		o.renderGauge(out.State)
		return out
	}

	out.State = gauge.ForResult(result)
	o.renderGauge(out.State)
	o.log.WithFields(logrus.Fields{"url": url, "result": result}).Info("scan complete")

	records, storeErr := o.history.Add(history.NewRecord(url, result, o.now()))
	if storeErr != nil {
		o.log.WithError(storeErr).Error("saving scan history")
		out.StoreErr = storeErr
		return out
	}
	out.Records = records
	o.renderHistory(records)
	return out
}

// Scan runs Begin, one Classify and Finish.
func (o *Orchestrator) Scan(ctx context.Context, input string) Outcome {
	url, ok := o.Begin(input)
	if !ok {
		return Outcome{State: gauge.Prompt}
	}
	result, err := o.Classify(ctx, url)
	return o.Finish(url, result, err)
}

// ShowHistory reads the stored list and renders it into every list target.
func (o *Orchestrator) ShowHistory() ([]history.Record, error) {
	records, err := o.history.List()
	if err != nil {
		o.log.WithError(err).Warn("loading scan history")
		records = []history.Record{}
	}
	o.renderHistory(records)
	return records, err
}

func (o *Orchestrator) renderGauge(s gauge.State) {
	if o.gauge != nil {
		o.gauge.RenderGauge(s)
	}
}

func (o *Orchestrator) renderHistory(records []history.Record) {
	for _, l := range o.lists {
		if l != nil {
			l.RenderHistory(records)
		}
	}
}
