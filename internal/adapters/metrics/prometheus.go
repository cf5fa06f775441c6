// Package metrics exposes render and dataset measurements in the Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/glance/internal/core/domain"
)

const namespace = "glance"

// Prometheus implements ports.Metrics on a private registry.
type Prometheus struct {
	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     prometheus.Gauge
	columns  prometheus.Gauge
	state    *prometheus.GaugeVec
}

// NewPrometheus creates the collectors and registers them with the Go runtime collectors.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Page renders by page and outcome.",
		}, []string{"page", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_seconds",
			Help:      "Time spent rendering a page.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"page"}),
		rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows of the loaded dataset.",
		}),
		columns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_columns",
			Help:      "Columns of the loaded dataset.",
		}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_state",
			Help:      "1 for the current load state of the dataset.",
		}, []string{"state"}),
	}

	p.registry.MustRegister(
		p.renders, p.duration, p.rows, p.columns, p.state,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	p.ObserveDataset(domain.StateUnloaded, 0, 0)
	return p
}

// ObserveRender records one page render.
func (p *Prometheus) ObserveRender(page domain.PageID, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.renders.WithLabelValues(string(page), outcome).Inc()
	p.duration.WithLabelValues(string(page)).Observe(d.Seconds())
}

// ObserveDataset records the load outcome.
func (p *Prometheus) ObserveDataset(state domain.ShellState, rows, columns int) {
	for _, s := range []domain.ShellState{domain.StateUnloaded, domain.StateLoaded, domain.StateFailed} {
		v := 0.0
		if s == state {
			v = 1
		}
		p.state.WithLabelValues(string(s)).Set(v)
	}
	p.rows.Set(float64(rows))
	p.columns.Set(float64(columns))
}

// Handler serves the registry.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
