// Package chart draws sparklines and plots as SVG with go-chart.
package chart

import (
	"bytes"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/ui/style"
	"go.trai.ch/zerr"
)

// Renderer implements ports.ChartRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Sparkline draws s without axes, scaled to the column's own range.
// An empty sparkline draws nothing and returns nil.
func (r *Renderer) Sparkline(s domain.Sparkline) ([]byte, error) {
	if len(s.Values) == 0 {
		return nil, nil
	}

	xs := make([]float64, len(s.Values))
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := s.Values
	if len(ys) == 1 {
		xs, ys = []float64{0, 1}, []float64{ys[0], ys[0]}
	}

	lo, hi := padRange(s.Min, s.Max)
	ch := gochart.Chart{
		Width:  s.Width,
		Height: s.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 2, Left: 2, Right: 2, Bottom: 2},
		},
		Canvas: gochart.Style{FillColor: drawing.ColorTransparent},
		XAxis: gochart.XAxis{
			Style: gochart.Style{Hidden: true},
			Range: &gochart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]},
		},
		YAxis: gochart.YAxis{
			Style: gochart.Style{Hidden: true},
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    s.Column,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(0, 1.5),
			},
		},
	}
	return render(&ch, s.Column)
}

// Plot draws every series of v against the row index.
// A view without points draws nothing and returns nil.
func (r *Renderer) Plot(v domain.PlotView) ([]byte, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	var series []gochart.Series
	for i, s := range v.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(s.Points)+1)
		ys := make([]float64, 0, len(s.Points)+1)
		for _, p := range s.Points {
			xs = append(xs, float64(p.Row))
			ys = append(ys, p.Value)
			lo, hi = math.Min(lo, p.Value), math.Max(hi, p.Value)
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(i, 2),
		})
	}
	if len(series) == 0 {
		return nil, nil
	}

	xMin, xMax := float64(v.Start), float64(v.End)
	if xMax <= xMin {
		xMax = xMin + 1
	}
	lo, hi = padRange(lo, hi)

	ch := gochart.Chart{
		Width:  v.Width,
		Height: v.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:           xAxisName(v),
			Range:          &gochart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: rowFormatter,
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return render(&ch, "plot")
}

func render(ch *gochart.Chart, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := ch.Render(gochart.SVG, &buf); err != nil {
		err = zerr.Wrap(err, domain.ErrChartRenderFailed.Error())
		return nil, zerr.With(err, "chart", name)
	}
	return buf.Bytes(), nil
}

func lineStyle(i int, width float64) gochart.Style {
	return gochart.Style{
		StrokeColor: drawing.ColorFromHex(style.Hex(style.SeriesColor(i))),
		StrokeWidth: width,
	}
}

// padRange widens a flat range so the chart library can scale it.
func padRange(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 1
	}
	if hi > lo {
		return lo, hi
	}
	pad := math.Abs(lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

func xAxisName(v domain.PlotView) string {
	if v.TimeColumn != "" {
		return "row (" + v.TimeColumn + ")"
	}
	return "row"
}

func rowFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(math.Round(f)))
	}
	return ""
}
