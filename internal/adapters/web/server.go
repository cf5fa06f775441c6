// Package web serves the dashboard pages over HTTP.
package web

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds how long in-flight requests may run after cancellation.
const ShutdownTimeout = 5 * time.Second

// Dashboard is the application the server exposes. Every render returns an
// error wrapping domain.ErrDatasetUnavailable while the dataset is not loaded.
type Dashboard interface {
	Title() string
	State() domain.ShellState
	Navigation() []domain.Page
	Failure() domain.FailureView
	Dataset() *domain.Dataset

	Home(ctx context.Context) (domain.HomeView, error)
	Table(ctx context.Context) (domain.TableView, error)
	Plot(ctx context.Context, sel domain.Selection) (domain.PlotView, error)
	PlotRows(ctx context.Context, sel domain.Selection) ([][]string, error)
	Extra(ctx context.Context) (domain.ExtraView, error)
}

// Options tunes the server.
type Options struct {
	// CacheSize bounds the render cache. Zero disables caching.
	CacheSize int
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// RequestID generates request identifiers. Defaults to random UUIDs.
	RequestID func() string
}

// Server routes requests to the dashboard.
type Server struct {
	dash      Dashboard
	charts    ports.ChartRenderer
	logger    ports.Logger
	metrics   http.Handler
	requestID func() string
	cache     *ttlcache.Cache[string, *response]
	templates map[string]*template.Template
	handler   http.Handler
}

// NewServer creates a Server.
func NewServer(dash Dashboard, charts ports.ChartRenderer, log ports.Logger, opts Options) *Server {
	s := &Server{
		dash:      dash,
		charts:    charts,
		logger:    log,
		metrics:   opts.Metrics,
		requestID: opts.RequestID,
		templates: parseTemplates(),
	}
	if s.requestID == nil {
		s.requestID = uuid.NewString
	}
	if opts.CacheSize > 0 {
		s.cache = ttlcache.New[string, *response](
			ttlcache.WithCapacity[string, *response](uint64(opts.CacheSize)),
		)
	}
	s.handler = s.withRequestLog(s.routes())
	return s
}

// Handler returns the root handler with logging applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve listens on addr and serves until ctx is cancelled, then shuts down gracefully.
// ready is called with the base URL once the listener is bound.
func (s *Server) Serve(ctx context.Context, addr string, ready func(url string)) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", addr)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if ready != nil {
		ready("http://" + ln.Addr().String())
	}
	return g.Wait()
}
