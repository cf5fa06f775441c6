package web

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"go.trai.ch/glance/internal/core/domain"
)

// response is a fully rendered reply, kept in the cache.
type response struct {
	status      int
	contentType string
	body        []byte
	etag        string
}

const (
	contentHTML = "text/html; charset=utf-8"
	contentCSV  = "text/csv; charset=utf-8"
	contentJSON = "application/json"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.cached(s.home))
	mux.HandleFunc("GET /table", s.cached(s.table))
	mux.HandleFunc("GET /plot", s.cached(s.plot))
	mux.HandleFunc("GET /plot.csv", s.cached(s.plotCSV))
	mux.HandleFunc("GET /extra", s.cached(s.extra))
	mux.HandleFunc("GET /healthz", s.healthz)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
	mux.HandleFunc("/", s.notFound)
	return mux
}

type renderFunc func(r *http.Request) (*response, error)

// cached serves a render through the cache and answers conditional requests.
// Only successful renders are cached; the dataset never changes once loaded.
func (s *Server) cached(render renderFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := cacheKey(r.URL)

		var resp *response
		if s.cache != nil {
			if item := s.cache.Get(key); item != nil {
				resp = item.Value()
			}
		}
		if resp == nil {
			var err error
			resp, err = render(r)
			if err != nil {
				resp = s.errorResponse(err)
			} else if s.cache != nil && resp.status == http.StatusOK {
				s.cache.Set(key, resp, 0)
			}
		}
		s.write(w, r, resp)
	}
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, resp *response) {
	w.Header().Set("Content-Type", resp.contentType)
	w.Header().Set("ETag", resp.etag)
	if resp.status == http.StatusOK && r.Header.Get("If-None-Match") == resp.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.body)))
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// cacheKey identifies a render by path and sorted query.
func cacheKey(u *url.URL) string {
	return u.Path + "?" + u.Query().Encode()
}

func (s *Server) home(r *http.Request) (*response, error) {
	view, err := s.dash.Home(r.Context())
	if err != nil {
		return nil, err
	}
	return s.renderHTML(http.StatusOK, "home", domain.PageHome, view)
}

type tableData struct {
	View       domain.TableView
	Sparklines map[string]template.URL
}

func (s *Server) table(r *http.Request) (*response, error) {
	view, err := s.dash.Table(r.Context())
	if err != nil {
		return nil, err
	}

	data := tableData{View: view, Sparklines: make(map[string]template.URL, len(view.Sparklines))}
	for _, spark := range view.Sparklines {
		svg, err := s.charts.Sparkline(spark)
		if err != nil {
			return nil, err
		}
		if svg != nil {
			data.Sparklines[spark.Column] = svgURL(svg)
		}
	}
	return s.renderHTML(http.StatusOK, "table", domain.PageTable, data)
}

type plotData struct {
	View     domain.PlotView
	Chart    template.URL
	Download template.URL
	Rows     int
}

func (s *Server) plot(r *http.Request) (*response, error) {
	sel := parseSelection(r.URL.Query())
	view, err := s.dash.Plot(r.Context(), sel)
	if err != nil {
		return nil, err
	}

	svg, err := s.charts.Plot(view)
	if err != nil {
		return nil, err
	}

	data := plotData{View: view, Download: downloadURL(view), Rows: s.dash.Dataset().RowCount()}
	if svg != nil {
		data.Chart = svgURL(svg)
	}
	return s.renderHTML(http.StatusOK, "plot", domain.PagePlot, data)
}

func (s *Server) plotCSV(r *http.Request) (*response, error) {
	records, err := s.dash.PlotRows(r.Context(), parseSelection(r.URL.Query()))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(records); err != nil {
		return nil, err
	}
	return newResponse(http.StatusOK, contentCSV, buf.Bytes()), nil
}

func (s *Server) extra(r *http.Request) (*response, error) {
	view, err := s.dash.Extra(r.Context())
	if err != nil {
		return nil, err
	}
	return s.renderHTML(http.StatusOK, "extra", domain.PageExtra, view)
}

type health struct {
	State   domain.ShellState `json:"state"`
	Rows    int               `json:"rows"`
	Columns int               `json:"columns"`
	Error   string            `json:"error,omitempty"`
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	state := s.dash.State()
	body := health{
		State:   state,
		Rows:    s.dash.Dataset().RowCount(),
		Columns: s.dash.Dataset().ColumnCount(),
	}
	status := http.StatusOK
	if state == domain.StateFailed {
		body.Error = s.dash.Failure().Message
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", contentJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	resp, err := s.renderHTML(http.StatusNotFound, "notfound", "", domain.ErrPageNotFound.Error())
	if err != nil {
		resp = s.errorResponse(err)
	}
	s.write(w, r, resp)
}

// errorResponse turns a render error into the failure page (503) or an
// internal error page (500).
func (s *Server) errorResponse(err error) *response {
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		resp, tmplErr := s.renderHTML(http.StatusServiceUnavailable, "failure", "", s.dash.Failure())
		if tmplErr == nil {
			return resp
		}
		err = tmplErr
	}

	s.logger.Error(err)
	resp, tmplErr := s.renderHTML(http.StatusInternalServerError, "error", "", err.Error())
	if tmplErr != nil {
		return newResponse(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte(err.Error()))
	}
	return resp
}

// parseSelection reads col, from and to. A missing or malformed to runs to the last row.
func parseSelection(q url.Values) domain.Selection {
	sel := domain.FullRange(q["col"]...)
	if v, err := strconv.Atoi(q.Get("from")); err == nil {
		sel.Start = v
	}
	if v, err := strconv.Atoi(q.Get("to")); err == nil {
		sel.End = max(v, domain.OpenEnd+1)
	}
	return sel
}

// downloadURL links the CSV export of the resolved selection.
func downloadURL(view domain.PlotView) template.URL {
	q := url.Values{"col": view.Selected}
	q.Set("from", strconv.Itoa(view.Start))
	q.Set("to", strconv.Itoa(view.End))
	// #nosec G203 -- fixed path with an encoded query built from validated column names
	return template.URL("/plot.csv?" + q.Encode())
}

func svgURL(svg []byte) template.URL {
	// #nosec G203 -- the payload is base64 encoded SVG produced by the chart renderer
	return template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg))
}
