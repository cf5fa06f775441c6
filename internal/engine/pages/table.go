package pages

import (
	"math"
	"strconv"

	"go.trai.ch/glance/internal/core/domain"
)

// Table renders the data table page: the grid plus a summary and a sparkline
// for every measure column. A nil or row-less dataset gives an Empty view.
func Table(ds *domain.Dataset, opts TableOptions) domain.TableView {
	view := domain.TableView{
		Headers:   ds.ColumnNames(),
		TotalRows: ds.RowCount(),
	}
	if ds.Empty() {
		view.Empty = true
		return view
	}

	shown := ds.RowCount()
	if opts.MaxRows > 0 && opts.MaxRows < shown {
		shown = opts.MaxRows
		view.Truncated = true
	}
	view.Rows = ds.Head(shown)

	for _, name := range ds.MeasureColumnNames() {
		values, _ := ds.Values(name)
		st := domain.Summarize(values)

		view.Summaries = append(view.Summaries, domain.ColumnSummary{
			Column: name,
			Label:  domain.PrettyColumnName(name),
			Count:  st.Count,
			Mean:   formatStat(st.Mean, opts.Precision),
			StdDev: formatStat(st.StdDev, opts.Precision),
			Min:    formatStat(st.Min, opts.Precision),
			Max:    formatStat(st.Max, opts.Precision),
		})
		view.Sparklines = append(view.Sparklines, domain.Sparkline{
			Column: name,
			Values: domain.Downsample(values, opts.SparklineMaxPoints),
			Min:    st.Min,
			Max:    st.Max,
			Width:  opts.SparklineWidth,
			Height: opts.SparklineHeight,
		})
	}
	return view
}

// formatStat prints v with precision decimals. Undefined values print as "".
func formatStat(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
