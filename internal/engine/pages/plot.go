package pages

import (
	"math"
	"slices"

	"go.trai.ch/glance/internal/core/domain"
)

// Plot renders the plot explorer for sel. It never fails: unknown or
// non-numeric columns are listed in Ignored and the range is clamped.
func Plot(ds *domain.Dataset, sel domain.Selection, opts PlotOptions) domain.PlotView {
	view := domain.PlotView{
		Available: ds.MeasureColumnNames(),
		Width:     opts.Width,
		Height:    opts.Height,
	}
	view.TimeColumn, _ = ds.TimeColumn()

	clamped := sel.Clamp(ds.RowCount())
	view.Start, view.End = clamped.Start, clamped.End

	view.Selected, view.Ignored = resolveColumns(ds, sel.Columns)
	if len(sel.Columns) == 0 {
		n := min(max(opts.DefaultColumns, 0), len(view.Available))
		view.Selected = slices.Clone(view.Available[:n])
	}

	if ds.Empty() {
		view.Empty = true
		return view
	}

	timeCol, hasTime := ds.Column(view.TimeColumn)
	for _, name := range view.Selected {
		values, _ := ds.Values(name)
		series := domain.PlotSeries{
			Column: name,
			Label:  domain.PrettyColumnName(name),
			Points: []domain.Point{},
		}
		for row := clamped.Start; row <= clamped.End; row++ {
			if math.IsNaN(values[row]) {
				continue
			}
			p := domain.Point{Row: row, Value: values[row]}
			if hasTime {
				p.Label = timeCol.Cells[row]
			}
			series.Points = append(series.Points, p)
		}
		view.Series = append(view.Series, series)
	}
	return view
}

// resolveColumns keeps the plottable requested columns in request order.
// Duplicates collapse; everything else is reported as ignored.
func resolveColumns(ds *domain.Dataset, requested []string) (selected, ignored []string) {
	seen := make(map[string]bool, len(requested))
	for _, name := range requested {
		if seen[name] {
			continue
		}
		seen[name] = true

		if kind, ok := ds.Kind(name); ok && kind == domain.KindNumeric {
			selected = append(selected, name)
			continue
		}
		ignored = append(ignored, name)
	}
	return selected, ignored
}

// Rows returns the selection as CSV records, the time column first when present.
// The first record is the header.
func Rows(ds *domain.Dataset, view domain.PlotView) [][]string {
	var columns []string
	if view.TimeColumn != "" && !slices.Contains(view.Selected, view.TimeColumn) {
		columns = append(columns, view.TimeColumn)
	}
	columns = append(columns, view.Selected...)

	cells := make([][]string, len(columns))
	for i, name := range columns {
		col, _ := ds.Column(name)
		cells[i] = col.Cells
	}

	records := [][]string{columns}
	if view.Empty {
		return records
	}
	for row := view.Start; row <= view.End; row++ {
		rec := make([]string, len(columns))
		for i := range columns {
			rec[i] = cells[i][row]
		}
		records = append(records, rec)
	}
	return records
}
