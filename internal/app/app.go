// Package app implements the application layer for glance.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/glance/internal/adapters/telemetry"
	"go.trai.ch/glance/internal/adapters/web"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/engine/pages"
	"go.trai.ch/glance/internal/ui/style"
	"go.trai.ch/zerr"
)

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic. After Load it holds the dataset
// shared read-only by every page render.
type App struct {
	configLoader  ports.ConfigLoader
	datasetLoader ports.DatasetLoader
	charts        ports.ChartRenderer
	metrics       ports.Metrics
	logger        ports.Logger
	browser       ports.Browser
	tracer        ports.Tracer
	otelSetup     bool

	cfg      domain.Config
	loadOnce sync.Once
	state    domain.ShellState
	ds       *domain.Dataset
	loadErr  error
}

// New creates a new App instance. A nil tracer disables tracing.
func New(
	configLoader ports.ConfigLoader,
	datasetLoader ports.DatasetLoader,
	charts ports.ChartRenderer,
	metrics ports.Metrics,
	log ports.Logger,
	browser ports.Browser,
	tracer ports.Tracer,
) *App {
	otelSetup := tracer != nil
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}
	return &App{
		configLoader:  configLoader,
		datasetLoader: datasetLoader,
		charts:        charts,
		metrics:       metrics,
		logger:        log,
		browser:       browser,
		tracer:        tracer,
		otelSetup:     otelSetup,
		cfg:           domain.DefaultConfig(),
		state:         domain.StateUnloaded,
	}
}

// WithTracer replaces the tracer and leaves the global OpenTelemetry provider alone.
// This is primarily used for testing.
func (a *App) WithTracer(tracer ports.Tracer) *App {
	a.tracer = tracer
	a.otelSetup = false
	return a
}

// ServeOptions configuration for the Serve method. Empty fields keep the
// values from the config file.
type ServeOptions struct {
	Cwd        string
	ConfigPath string
	DataPath   string
	Addr       string
	NoBrowser  bool
	LogJSON    bool
}

// Serve loads the configuration and the dataset, then serves the dashboard
// until ctx is cancelled. A dataset that fails to load does not stop the
// server; every page reports the failure instead.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	if opts.LogJSON {
		if sw, ok := a.logger.(jsonSwitcher); ok {
			sw.SetJSON(true)
		}
	}

	// 1. Configuration
	cfg, err := a.configLoader.Load(opts.Cwd, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)
	a.cfg = *cfg

	// 2. Dataset
	_ = a.Load()
	if a.cfg.Metrics.Enabled {
		a.metrics.ObserveDataset(a.state, a.ds.RowCount(), a.ds.ColumnCount())
	}

	// 3. Telemetry
	if a.otelSetup {
		var sink ports.Metrics
		if a.cfg.Metrics.Enabled {
			sink = a.metrics
		}
		tp := telemetry.Setup(telemetry.NewBridge(sink))
		defer func() {
			_ = tp.Shutdown(context.WithoutCancel(ctx))
		}()
	}

	// 4. Server
	serverOpts := web.Options{CacheSize: a.cfg.Cache.Size}
	if a.cfg.Metrics.Enabled {
		serverOpts.Metrics = a.metrics.Handler()
	}
	server := web.NewServer(a, a.charts, a.logger, serverOpts)

	return server.Serve(ctx, a.cfg.Server.Addr, func(url string) {
		a.logger.Info(style.Banner(a.cfg.Title, url))
		if !a.cfg.Server.OpenBrowser {
			return
		}
		if err := a.browser.Open(url); err != nil {
			a.logger.Warn(fmt.Sprintf("could not open a browser, visit %s", url))
		}
	})
}

func applyOverrides(cfg *domain.Config, opts ServeOptions) {
	if opts.DataPath != "" {
		cfg.Data = domain.ResolveDataPath(opts.Cwd, opts.DataPath)
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}
	if opts.NoBrowser {
		cfg.Server.OpenBrowser = false
	}
}

// Load reads the dataset once. Later calls return the outcome of the first.
func (a *App) Load() error {
	a.loadOnce.Do(func() {
		ds, err := a.datasetLoader.Load(a.cfg.Data)
		if err != nil {
			a.state = domain.StateFailed
			a.loadErr = err
			a.logger.Error(err)
			return
		}
		a.state = domain.StateLoaded
		a.ds = ds
		a.logger.Info(fmt.Sprintf("%s loaded %d rows and %d columns from %s",
			style.Check, ds.RowCount(), ds.ColumnCount(), ds.Source()))
	})
	return a.loadErr
}

// Title returns the dashboard title.
func (a *App) Title() string {
	return a.cfg.Title
}

// State returns the load state.
func (a *App) State() domain.ShellState {
	return a.state
}

// Navigation returns the pages listed in the sidebar.
func (a *App) Navigation() []domain.Page {
	return domain.Navigation()
}

// Dataset returns the loaded dataset, or nil.
func (a *App) Dataset() *domain.Dataset {
	return a.ds
}

// Failure returns the view shown instead of every page while the dataset is unavailable.
func (a *App) Failure() domain.FailureView {
	if a.loadErr == nil {
		return pages.Failure(domain.ErrDatasetUnavailable)
	}
	return pages.Failure(a.loadErr)
}

// Home renders the landing page.
func (a *App) Home(ctx context.Context) (domain.HomeView, error) {
	var view domain.HomeView
	err := a.render(ctx, domain.PageHome, func(span ports.Span) {
		view = pages.Home(a.ds, a.Navigation(), pages.HomeOptionsFrom(&a.cfg))
		span.SetAttribute("dataset.rows", view.Rows)
	})
	return view, err
}

// Table renders the data table page.
func (a *App) Table(ctx context.Context) (domain.TableView, error) {
	var view domain.TableView
	err := a.render(ctx, domain.PageTable, func(span ports.Span) {
		view = pages.Table(a.ds, pages.TableOptionsFrom(&a.cfg))
		span.SetAttribute("table.sparklines", len(view.Sparklines))
	})
	return view, err
}

// Plot renders the plot explorer for sel.
func (a *App) Plot(ctx context.Context, sel domain.Selection) (domain.PlotView, error) {
	var view domain.PlotView
	err := a.render(ctx, domain.PagePlot, func(span ports.Span) {
		view = pages.Plot(a.ds, sel, pages.PlotOptionsFrom(&a.cfg))
		span.SetAttribute("plot.columns", view.Selected)
		span.SetAttribute("plot.start", view.Start)
		span.SetAttribute("plot.end", view.End)
	})
	return view, err
}

// PlotRows returns the rows behind the plot for sel as CSV records with a header.
func (a *App) PlotRows(ctx context.Context, sel domain.Selection) ([][]string, error) {
	var rows [][]string
	err := a.render(ctx, domain.PagePlot, func(span ports.Span) {
		view := pages.Plot(a.ds, sel, pages.PlotOptionsFrom(&a.cfg))
		rows = pages.Rows(a.ds, view)
		span.SetAttribute("plot.export", true)
	})
	return rows, err
}

// Extra renders the extra page.
func (a *App) Extra(ctx context.Context) (domain.ExtraView, error) {
	var view domain.ExtraView
	err := a.render(ctx, domain.PageExtra, func(ports.Span) {
		view = pages.Extra()
	})
	return view, err
}

// render runs fn inside the page span once the dataset is available.
func (a *App) render(ctx context.Context, page domain.PageID, fn func(span ports.Span)) error {
	_, span := a.tracer.Start(ctx, page.SpanName())
	defer span.End()

	if !a.state.Ready() {
		err := errors.Join(domain.ErrDatasetUnavailable, a.loadErr)
		span.RecordError(err)
		return err
	}
	fn(span)
	return nil
}
