package ports

import (
	"net/http"
	"time"

	"go.trai.ch/glance/internal/core/domain"
)

// Metrics records render and dataset measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveRender records one page render.
	ObserveRender(page domain.PageID, d time.Duration, err error)
	// ObserveDataset records the outcome of the dataset load.
	ObserveDataset(state domain.ShellState, rows, columns int)
	// Handler exposes the collected metrics over HTTP.
	Handler() http.Handler
}
