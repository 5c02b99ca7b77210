package report

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/user/noxim_plot_go/internal/analysis"
	"github.com/user/noxim_plot_go/internal/config"
)

// LegendTitle heads the legend of every chart.
const LegendTitle = "Routing Technique:"

// LegendLabel turns a route name into its legend label.
func LegendLabel(route string, style config.LabelStyle) string {
	if style == config.LabelRaw {
		return route
	}
	return strings.ToLower(strings.ReplaceAll(route, "_", " "))
}

// CreateLinePlot draws one line per route of agg against the injection rates.
// Points are joined in pir order as found in the file. A NaN value leaves a
// gap in its line; a route with no values at all keeps its legend entry.
// An empty result table gives a chart with axes and grid but no lines.
func CreateLinePlot(agg *analysis.AggregatedMetric, chart config.ChartSpec, style config.LabelStyle) (*plot.Plot, error) {
	if agg == nil {
		return nil, errors.New("no aggregated metric to plot")
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = config.PIRAxisLabel
	p.Y.Label.Text = chart.YLabel
	p.Add(plotter.NewGrid())

	p.Legend.Add(LegendTitle)
	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)

	for i, s := range agg.Series {
		lineStyle := plotter.DefaultLineStyle
		lineStyle.Color = plotutil.Color(i)
		lineStyle.Width = vg.Points(1.5)

		for _, seg := range segments(s) {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, errors.Wrapf(err, "line for route %q", s.Route)
			}
			line.LineStyle = lineStyle
			p.Add(line)
		}
		p.Legend.Add(LegendLabel(s.Route, style), &plotter.Line{LineStyle: lineStyle})
	}
	return p, nil
}

// segments splits a series into runs of consecutive finite points.
func segments(s analysis.Series) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for _, pt := range s.Points {
		if !finite(pt.PIR) || !finite(pt.Value) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: pt.PIR, Y: pt.Value})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
