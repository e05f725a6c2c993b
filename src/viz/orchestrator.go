// Package viz holds the client-side core of AutoViz: the orchestration state
// machine sequencing Upload → Configure → Render → Export/Reset, the dataset
// store it guards, and the projections the UI consumes. It knows nothing
// about any particular UI toolkit; the UI layer wires controls and callbacks
// in and invokes one method per user action.
package viz

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/api"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/chartspec"
)

// State is the application state, derived from what the store holds.
type State int

const (
	// StateEmpty: no dataset uploaded yet.
	StateEmpty State = iota
	// StateLoaded: dataset present, no chart.
	StateLoaded
	// StateConfigured: dataset present and the user has touched chart
	// controls. Same storage as Loaded; purely a UI-readiness signal.
	StateConfigured
	// StateRendered: chart specification present and displayed.
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateConfigured:
		return "configured"
	case StateRendered:
		return "rendered"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Chart image export dimensions, fixed by design.
const (
	ChartExportWidth  = 1200
	ChartExportHeight = 800
)

// Service is the remote-service contract the orchestrator depends on.
// *api.Client satisfies it; tests substitute fakes.
type Service interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*api.UploadResponse, error)
	GenerateChart(ctx context.Context, cfg api.ChartConfig) (*api.ChartResponse, error)
	ExportData(ctx context.Context, format string) ([]byte, error)
	DataStats(ctx context.Context) (*api.DataStats, error)
}

// Surface is the render surface: it displays a chart specification and can
// export it as an image. The go-chart adapter in src/render implements it.
type Surface interface {
	Display(spec *chartspec.Spec)
	Export(spec *chartspec.Spec, width, height int, out io.Writer) error
	Clear()
}

// Sink creates named output files for exports. The UI backs it with a save
// dialog; headless runs use a directory sink.
type Sink interface {
	Create(name string) (io.WriteCloser, error)
}

// Options wires optional collaborators into an orchestrator. Any field may
// be left zero: nil controls skip BusyGate handling, a nil notifier drops
// messages, nil callbacks are not invoked.
type Options struct {
	Surface  Surface
	Notifier Notifier

	// Trigger controls, disabled while their action is in flight.
	UploadControl   Control
	GenerateControl Control

	// OnDataset fires after every successful upload with the new projection.
	OnDataset func(DatasetView)
	// OnStats fires after the post-upload stats refresh.
	OnStats func(api.DataStats)
	// OnReset fires when Reset returns the machine to Empty.
	OnReset func()
}

// Orchestrator owns the application state machine. All transitions run on
// the caller's goroutine; the mutex is held only around state flips, never
// across a network call, so the UI stays responsive while a request is
// outstanding.
type Orchestrator struct {
	svc  Service
	opts Options

	store *Store

	mu       sync.Mutex
	state    State
	pending  api.ChartConfig
	uploadIn bool
	genIn    bool
}

// New returns an orchestrator in the Empty state.
func New(svc Service, opts Options) *Orchestrator {
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	return &Orchestrator{svc: svc, opts: opts, store: &Store{}}
}

// State reports the current machine state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Store exposes the dataset store for read-only consumers.
func (o *Orchestrator) Store() *Store { return o.store }

// DatasetView projects the current dataset; ok is false in the Empty state.
func (o *Orchestrator) DatasetView() (DatasetView, bool) {
	ds := o.store.Dataset()
	if ds == nil {
		return DatasetView{}, false
	}
	return ProjectDataset(ds), true
}

// Config returns the last chart configuration the user touched.
func (o *Orchestrator) Config() api.ChartConfig {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending
}

func (o *Orchestrator) notify(msg string, sev Severity) {
	o.opts.Notifier.Notify(msg, sev)
}

func (o *Orchestrator) fail(err error) error {
	o.notify(err.Error(), SeverityError)
	return err
}

// Upload sends the file to the service and, on success, replaces the dataset
// wholesale, clears any stale chart, projects the new view and moves to
// Loaded. Every failure path leaves prior state intact.
func (o *Orchestrator) Upload(ctx context.Context, filename string, r io.Reader) error {
	if r == nil || filename == "" {
		return o.fail(validationf("No file selected"))
	}

	o.mu.Lock()
	if o.uploadIn {
		o.mu.Unlock()
		return o.fail(validationf("An upload is already in progress"))
	}
	o.uploadIn = true
	o.mu.Unlock()

	release := EngageBusy(o.opts.UploadControl, "Uploading…")
	defer release()
	defer func() {
		o.mu.Lock()
		o.uploadIn = false
		o.mu.Unlock()
	}()

	start := time.Now()
	resp, err := o.svc.Upload(ctx, filename, r)
	if err != nil {
		return o.fail(&TransportError{Err: err})
	}
	if !resp.Success {
		return o.fail(&ServiceError{Msg: resp.Error})
	}
	TimeTrack(start, "upload "+filename)

	ds := &Dataset{
		FileName:  filename,
		Headers:   resp.Headers,
		Rows:      resp.Data,
		TotalRows: resp.TotalRows,
		Columns:   resp.ColumnInfo,
	}
	o.store.ReplaceDataset(ds)
	o.mu.Lock()
	o.state = StateLoaded
	o.pending = api.ChartConfig{}
	o.mu.Unlock()

	if o.opts.Surface != nil {
		o.opts.Surface.Clear()
	}
	view := ProjectDataset(ds)
	if o.opts.OnDataset != nil {
		o.opts.OnDataset(view)
	}
	o.refreshStats(ctx)
	o.notify(fmt.Sprintf("Loaded %s: %d rows, %d columns", filename, ds.TotalRows, view.TotalColumns), SeveritySuccess)
	return nil
}

// refreshStats pulls dataset statistics after a successful upload. Failures
// only log; the upload itself already succeeded.
func (o *Orchestrator) refreshStats(ctx context.Context) {
	if o.opts.OnStats == nil {
		return
	}
	stats, err := o.svc.DataStats(ctx)
	if err != nil {
		Debugf("stats refresh failed: %v", err)
		return
	}
	o.opts.OnStats(*stats)
}

// Configure records that the user touched the chart controls. It only flips
// Loaded to Configured; Rendered stays Rendered since the chart on screen is
// still the last generated one.
func (o *Orchestrator) Configure(cfg api.ChartConfig) error {
	if o.store.Dataset() == nil {
		return validationf("no dataset loaded")
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = cfg
	if o.state == StateLoaded {
		o.state = StateConfigured
	}
	return nil
}

// GenerateChart asks the service for a chart specification and hands it to
// the render surface. The X-axis precondition is checked locally and never
// reaches the network.
func (o *Orchestrator) GenerateChart(ctx context.Context, cfg api.ChartConfig) error {
	ds := o.store.Dataset()
	if ds == nil {
		return o.fail(validationf("Please upload a data file first"))
	}
	if cfg.XAxis == "" {
		return o.fail(validationf("Please select an X-axis column"))
	}
	if !contains(ds.Headers, cfg.XAxis) {
		return o.fail(validationf("Unknown X-axis column %q", cfg.XAxis))
	}

	o.mu.Lock()
	if o.genIn {
		o.mu.Unlock()
		return o.fail(validationf("A chart is already being generated"))
	}
	o.genIn = true
	o.pending = cfg
	o.mu.Unlock()

	release := EngageBusy(o.opts.GenerateControl, "Generating…")
	defer release()
	defer func() {
		o.mu.Lock()
		o.genIn = false
		o.mu.Unlock()
	}()

	resp, err := o.svc.GenerateChart(ctx, cfg)
	if err != nil {
		return o.fail(&TransportError{Err: err})
	}
	if !resp.Success {
		return o.fail(&ServiceError{Msg: resp.Error})
	}
	spec, err := chartspec.Parse(resp.Chart)
	if err != nil {
		return o.fail(&ServiceError{Msg: err.Error()})
	}

	o.store.SetChart(spec)
	o.mu.Lock()
	o.state = StateRendered
	o.mu.Unlock()

	if o.opts.Surface != nil {
		o.opts.Surface.Display(spec)
	}
	o.notify("Chart generated successfully", SeveritySuccess)
	return nil
}

// ExportChart writes the current chart as a PNG at the fixed export
// dimensions. Only "png" is supported. Purely local; no service round trip.
func (o *Orchestrator) ExportChart(format string, sink Sink) error {
	spec := o.store.Chart()
	if spec == nil {
		return o.fail(validationf("Please generate a chart first"))
	}
	if format != "png" {
		return o.fail(validationf("Unsupported chart export format %q", format))
	}
	if o.opts.Surface == nil {
		return o.fail(validationf("No render surface available"))
	}
	name := ChartFileName(spec.Title())
	wc, err := sink.Create(name)
	if err != nil {
		return o.fail(fmt.Errorf("create %s: %w", name, err))
	}
	if err := o.opts.Surface.Export(spec, ChartExportWidth, ChartExportHeight, wc); err != nil {
		wc.Close()
		return o.fail(fmt.Errorf("export chart: %w", err))
	}
	if err := wc.Close(); err != nil {
		return o.fail(fmt.Errorf("finish %s: %w", name, err))
	}
	o.notify("Chart exported as "+name, SeveritySuccess)
	return nil
}

// ExportData downloads the dataset from the service in the given format and
// writes it to the sink as autoviz_data.<format>. No local state changes.
func (o *Orchestrator) ExportData(ctx context.Context, format string, sink Sink) error {
	if o.store.Dataset() == nil {
		return o.fail(validationf("Please upload a data file first"))
	}
	payload, err := o.svc.ExportData(ctx, format)
	if err != nil {
		return o.fail(&TransportError{Err: err})
	}
	name := "autoviz_data." + format
	wc, err := sink.Create(name)
	if err != nil {
		return o.fail(fmt.Errorf("create %s: %w", name, err))
	}
	if _, err := wc.Write(payload); err != nil {
		wc.Close()
		return o.fail(fmt.Errorf("write %s: %w", name, err))
	}
	if err := wc.Close(); err != nil {
		return o.fail(fmt.Errorf("finish %s: %w", name, err))
	}
	o.notify("Data exported as "+name, SeveritySuccess)
	return nil
}

// Reset returns to Empty from any state: the store is cleared, the surface
// blanked and the UI told to restore the initial upload affordance.
func (o *Orchestrator) Reset() {
	o.store.Clear()
	o.mu.Lock()
	o.state = StateEmpty
	o.pending = api.ChartConfig{}
	o.mu.Unlock()
	if o.opts.Surface != nil {
		o.opts.Surface.Clear()
	}
	if o.opts.OnReset != nil {
		o.opts.OnReset()
	}
	Infof("reset to empty state")
}

// ChartFileName derives the PNG export name from the chart title, falling
// back to a default when the title is empty after sanitizing.
func ChartFileName(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(title))
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		cleaned = "autoviz_chart"
	}
	return cleaned + ".png"
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
