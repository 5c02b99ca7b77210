package report

import (
	"image"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/user/noxim_plot_go/internal/analysis"
	"github.com/user/noxim_plot_go/internal/config"
)

// CreateFigure builds one chart per configured metric and lays them out side
// by side. aggs must be in the same order as cfg.Charts.
func CreateFigure(aggs []*analysis.AggregatedMetric, cfg config.Config) (image.Image, error) {
	if len(aggs) != len(cfg.Charts) {
		return nil, errors.Errorf("got %d aggregated metrics for %d charts", len(aggs), len(cfg.Charts))
	}
	plots := make([]*plot.Plot, 0, len(aggs))
	for i, agg := range aggs {
		p, err := CreateLinePlot(agg, cfg.Charts[i], cfg.Labels)
		if err != nil {
			return nil, errors.Wrapf(err, "chart %q", cfg.Charts[i].Title)
		}
		plots = append(plots, p)
	}
	return ComposeFigure(plots, cfg.Width, cfg.Height)
}

// ComposeFigure rasterises plots into a single image, one row, equal widths.
func ComposeFigure(plots []*plot.Plot, width, height vg.Length) (image.Image, error) {
	if len(plots) == 0 {
		return nil, errors.New("no plots to compose")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid figure size %vx%v", width, height)
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)

	t := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, t, dc)
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}
	return img.Image(), nil
}
