package web_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/web"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports/mocks"
	"go.trai.ch/glance/internal/engine/pages"
	"go.uber.org/mock/gomock"
)

// fakeDashboard renders the real pages over a fixed dataset.
type fakeDashboard struct {
	ds      *domain.Dataset
	loadErr error
	renders atomic.Int32
}

func (f *fakeDashboard) Title() string { return "Glance" }

func (f *fakeDashboard) State() domain.ShellState {
	if f.loadErr != nil {
		return domain.StateFailed
	}
	return domain.StateLoaded
}

func (f *fakeDashboard) Navigation() []domain.Page    { return domain.Navigation() }
func (f *fakeDashboard) Failure() domain.FailureView { return pages.Failure(f.loadErr) }
func (f *fakeDashboard) Dataset() *domain.Dataset    { return f.ds }

func (f *fakeDashboard) check() error {
	f.renders.Add(1)
	if f.loadErr != nil {
		return errors.Join(domain.ErrDatasetUnavailable, f.loadErr)
	}
	return nil
}

func (f *fakeDashboard) Home(context.Context) (domain.HomeView, error) {
	if err := f.check(); err != nil {
		return domain.HomeView{}, err
	}
	return pages.Home(f.ds, f.Navigation(), pages.HomeOptions{Title: "Glance", PreviewRows: 10}), nil
}

func (f *fakeDashboard) Table(context.Context) (domain.TableView, error) {
	if err := f.check(); err != nil {
		return domain.TableView{}, err
	}
	cfg := domain.DefaultConfig()
	return pages.Table(f.ds, pages.TableOptionsFrom(&cfg)), nil
}

func (f *fakeDashboard) Plot(_ context.Context, sel domain.Selection) (domain.PlotView, error) {
	if err := f.check(); err != nil {
		return domain.PlotView{}, err
	}
	cfg := domain.DefaultConfig()
	return pages.Plot(f.ds, sel, pages.PlotOptionsFrom(&cfg)), nil
}

func (f *fakeDashboard) PlotRows(ctx context.Context, sel domain.Selection) ([][]string, error) {
	view, err := f.Plot(ctx, sel)
	if err != nil {
		return nil, err
	}
	return pages.Rows(f.ds, view), nil
}

func (f *fakeDashboard) Extra(context.Context) (domain.ExtraView, error) {
	if err := f.check(); err != nil {
		return domain.ExtraView{}, err
	}
	return pages.Extra(), nil
}

func timeTemp(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset("data.csv", []string{"time", "temp"}, [][]string{{"0", "10"}, {"1", "20"}, {"2", "15"}})
	require.NoError(t, err)
	return ds
}

type fixture struct {
	dash   *fakeDashboard
	server *web.Server
	logger *mocks.MockLogger
}

func newFixture(t *testing.T, dash *fakeDashboard, opts web.Options) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	charts := mocks.NewMockChartRenderer(ctrl)
	charts.EXPECT().Sparkline(gomock.Any()).Return([]byte("<svg>spark</svg>"), nil).AnyTimes()
	charts.EXPECT().Plot(gomock.Any()).Return([]byte("<svg>plot</svg>"), nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	if opts.RequestID == nil {
		opts.RequestID = func() string { return "req-1" }
	}
	return &fixture{dash: dash, server: web.NewServer(dash, charts, log, opts), logger: log}
}

func (f *fixture) get(t *testing.T, target string, header ...string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec.Result()
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServer_Home(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	resp := f.get(t, "/")
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "Data has 3 rows and 2 columns.")
	assert.Contains(t, body, `<a href="/table">Data Table</a>`)
	assert.Contains(t, body, "📈")
}

func TestServer_Table(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	resp := f.get(t, "/table")
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<td>Temp</td>")
	assert.Contains(t, body, `<td class="num">15.00</td>`)
	assert.Equal(t, 1, strings.Count(body, "data:image/svg+xml;base64,"), "one sparkline per measure column")
	assert.Contains(t, body, `class="active"`)
}

func TestServer_Plot_IsIdempotent(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	first := f.get(t, "/plot?col=temp&from=0&to=2")
	second := f.get(t, "/plot?col=temp&from=0&to=2")

	require.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, readBody(t, first), readBody(t, second))
	assert.Equal(t, first.Header.Get("ETag"), second.Header.Get("ETag"))
	assert.NotEmpty(t, first.Header.Get("ETag"))
}

func TestServer_Plot_NotModified(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	first := f.get(t, "/plot?col=temp")
	tag := first.Header.Get("ETag")

	again := f.get(t, "/plot?col=temp", "If-None-Match", tag)
	assert.Equal(t, http.StatusNotModified, again.StatusCode)
	assert.Empty(t, readBody(t, again))
}

func TestServer_Plot_IgnoredColumnsAndClamp(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	resp := f.get(t, "/plot?col=bogus&col=temp&from=-3&to=99")
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Ignored columns: bogus")
	assert.Contains(t, body, "Rows 0 to 2 of 3.")
	assert.Contains(t, body, `href="/plot.csv?col=temp&amp;from=0&amp;to=2"`)
}

func TestServer_Plot_NegativeEndClampsToFirstRow(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	for _, to := range []string{"-1", "-2", "-9223372036854775808"} {
		t.Run(to, func(t *testing.T) {
			resp := f.get(t, "/plot.csv?col=temp&from=0&to="+to)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "time,temp\n0,10\n", readBody(t, resp))
		})
	}

	resp := f.get(t, "/plot?col=temp&from=0&to=-1")
	assert.Contains(t, readBody(t, resp), "Rows 0 to 0 of 3.")
}

func TestServer_PlotCSV(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	resp := f.get(t, "/plot.csv?col=temp&from=0&to=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))

	g := goldie.New(t)
	g.Assert(t, "plot_time_temp", []byte(readBody(t, resp)))
}

func TestServer_Extra(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	resp := f.get(t, "/extra")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "reserved for further analysis")
}

func TestServer_NotFound(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	resp := f.get(t, "/4_missing_page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Page not found or not discovered")
}

func TestServer_OnlyGetRendersPages(t *testing.T) {
	dash := &fakeDashboard{ds: timeTemp(t)}
	f := newFixture(t, dash, web.Options{})

	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/table", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, dash.renders.Load())
}

func TestServer_FailedLoadShowsFailureEverywhere(t *testing.T) {
	loadErr := domain.NewLoadError("missing.csv", domain.ErrDataFileNotFound)
	f := newFixture(t, &fakeDashboard{loadErr: loadErr}, web.Options{CacheSize: 16})

	for _, path := range []string{"/", "/table", "/plot?col=temp", "/plot.csv", "/extra"} {
		t.Run(path, func(t *testing.T) {
			resp := f.get(t, path)
			body := readBody(t, resp)

			assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
			assert.Contains(t, body, "The dataset could not be loaded")
			assert.Contains(t, body, "failed to load dataset missing.csv: data file not found")
		})
	}
}

func TestServer_Healthz(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

		resp := f.get(t, "/healthz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"state":"loaded","rows":3,"columns":2}`, readBody(t, resp))
	})

	t.Run("failed", func(t *testing.T) {
		loadErr := domain.NewLoadError("x.csv", domain.ErrDatasetMalformed)
		f := newFixture(t, &fakeDashboard{loadErr: loadErr}, web.Options{})

		resp := f.get(t, "/healthz")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.JSONEq(t, `{"state":"failed","rows":0,"columns":0,"error":"failed to load dataset x.csv: malformed CSV"}`, readBody(t, resp))
	})
}

func TestServer_RequestID(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	assert.Equal(t, "req-1", f.get(t, "/").Header.Get(web.RequestIDHeader))
	assert.Equal(t, "abc", f.get(t, "/", web.RequestIDHeader, "abc").Header.Get(web.RequestIDHeader))
}

func TestServer_DefaultRequestIDIsUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	s := web.NewServer(&fakeDashboard{ds: timeTemp(t)}, mocks.NewMockChartRenderer(ctrl), log, web.Options{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extra", nil))
	assert.Len(t, rec.Header().Get(web.RequestIDHeader), 36)
}

func TestServer_Metrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "glance_dataset_rows 3\n")
	})

	on := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{Metrics: metrics})
	assert.Contains(t, readBody(t, on.get(t, "/metrics")), "glance_dataset_rows 3")

	off := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})
	assert.Equal(t, http.StatusNotFound, off.get(t, "/metrics").StatusCode)
}

func TestServer_CacheServesRepeatRenders(t *testing.T) {
	dash := &fakeDashboard{ds: timeTemp(t)}
	f := newFixture(t, dash, web.Options{CacheSize: 8})

	f.get(t, "/plot?col=temp&from=0")
	f.get(t, "/plot?from=0&col=temp")
	assert.Equal(t, int32(1), dash.renders.Load(), "query order does not change the cache key")

	f.get(t, "/table")
	assert.Equal(t, int32(2), dash.renders.Load())
}

func TestServer_Serve(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})
	ctx, cancel := context.WithCancel(t.Context())

	urls := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- f.server.Serve(ctx, "127.0.0.1:0", func(url string) { urls <- url })
	}()

	var base string
	select {
	case base = <-urls:
	case err := <-done:
		t.Fatalf("server stopped early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get(base + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(web.ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ServeBadAddress(t *testing.T) {
	f := newFixture(t, &fakeDashboard{ds: timeTemp(t)}, web.Options{})

	err := f.server.Serve(t.Context(), "256.0.0.1:bad", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "http server failed")
}
