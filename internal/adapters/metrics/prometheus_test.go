package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/metrics"
	"go.trai.ch/glance/internal/core/domain"
)

func TestPrometheus_ObserveRender(t *testing.T) {
	m := metrics.NewPrometheus()

	m.ObserveRender(domain.PageTable, 3*time.Millisecond, nil)
	m.ObserveRender(domain.PageTable, time.Millisecond, nil)
	m.ObserveRender(domain.PagePlot, time.Millisecond, errors.New("boom"))

	count, err := testutil.GatherAndCount(m.Registry(), "glance_page_renders_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "glance_page_render_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheus_Handler(t *testing.T) {
	m := metrics.NewPrometheus()
	m.ObserveDataset(domain.StateLoaded, 3, 2)
	m.ObserveRender(domain.PageHome, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, "glance_dataset_rows 3")
	assert.Contains(t, out, "glance_dataset_columns 2")
	assert.Contains(t, out, `glance_dataset_state{state="loaded"} 1`)
	assert.Contains(t, out, `glance_dataset_state{state="failed"} 0`)
	assert.Contains(t, out, `glance_page_renders_total{outcome="ok",page="home"} 1`)
	assert.Contains(t, out, "go_goroutines")
}
