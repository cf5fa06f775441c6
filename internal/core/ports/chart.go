package ports

import "go.trai.ch/glance/internal/core/domain"

// ChartRenderer draws views as SVG documents.
//
//go:generate mockgen -source=chart.go -destination=mocks/mock_chart.go -package=mocks
type ChartRenderer interface {
	// Sparkline draws a small axis-free line chart.
	Sparkline(s domain.Sparkline) ([]byte, error)
	// Plot draws every series of the view on shared axes.
	Plot(v domain.PlotView) ([]byte, error)
}
