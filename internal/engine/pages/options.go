// Package pages holds the pure page renders. Each render takes the shared
// read-only dataset and returns a plain view value.
package pages

import "go.trai.ch/glance/internal/core/domain"

// TableOptions controls Table.
type TableOptions struct {
	// MaxRows caps the grid. Zero shows every row.
	MaxRows   int
	Precision int

	SparklineWidth     int
	SparklineHeight    int
	SparklineMaxPoints int
}

// PlotOptions controls Plot.
type PlotOptions struct {
	DefaultColumns int
	Width          int
	Height         int
}

// HomeOptions controls Home.
type HomeOptions struct {
	Title       string
	PreviewRows int
}

// TableOptionsFrom extracts the table settings of cfg.
func TableOptionsFrom(cfg *domain.Config) TableOptions {
	return TableOptions{
		MaxRows:            cfg.Table.MaxRows,
		Precision:          cfg.Table.Precision,
		SparklineWidth:     cfg.Sparkline.Width,
		SparklineHeight:    cfg.Sparkline.Height,
		SparklineMaxPoints: cfg.Sparkline.MaxPoints,
	}
}

// PlotOptionsFrom extracts the plot settings of cfg.
func PlotOptionsFrom(cfg *domain.Config) PlotOptions {
	return PlotOptions{
		DefaultColumns: cfg.Plot.DefaultColumns,
		Width:          cfg.Plot.Width,
		Height:         cfg.Plot.Height,
	}
}

// HomeOptionsFrom extracts the home page settings of cfg.
func HomeOptionsFrom(cfg *domain.Config) HomeOptions {
	return HomeOptions{Title: cfg.Title, PreviewRows: domain.PreviewRows}
}
