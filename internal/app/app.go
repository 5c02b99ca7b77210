package app

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/user/noxim_plot_go/internal/analysis"
	"github.com/user/noxim_plot_go/internal/config"
	"github.com/user/noxim_plot_go/internal/parser"
	"github.com/user/noxim_plot_go/internal/report"
)

// Pipeline stage names used to prefix errors.
const (
	StageLoad      = "load"
	StageAggregate = "aggregate"
	StageRender    = "render"
)

// App runs load, aggregate and render for one result file.
type App struct {
	log     logrus.FieldLogger
	display report.Displayer
}

// NewApp creates an App. A nil logger uses the logrus standard logger and a
// nil display opens a Fyne window.
func NewApp(log logrus.FieldLogger, display report.Displayer) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if display == nil {
		display = &report.FyneDisplay{}
	}
	return &App{log: log, display: display}
}

// Run executes the pipeline and returns once the figure window is closed.
// Errors are wrapped with the name of the stage that failed.
func (a *App) Run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}
	a.log.WithField("file", cfg.File).Info("Parsing result file")

	ds, err := parser.Load(cfg.File)
	if err != nil {
		return errors.Wrap(err, StageLoad)
	}
	routes, pirs := ds.Routes(), ds.PIRs()
	a.log.WithFields(logrus.Fields{
		"rows":   len(ds.Rows),
		"routes": len(routes),
		"pirs":   len(pirs),
	}).Info("Parsed result file")
	if ds.Skipped > 0 {
		a.log.WithField("lines", ds.Skipped).Warn("Skipped blank lines")
	}

	aggs, err := analysis.AggregateAll(ds, cfg.Charts)
	if err != nil {
		return errors.Wrap(err, StageAggregate)
	}
	for _, agg := range aggs {
		a.warnMissing(agg)
	}

	a.log.WithField("charts", len(cfg.Charts)).Info("Generating plots")
	img, err := report.CreateFigure(aggs, cfg)
	if err != nil {
		return errors.Wrap(err, StageRender)
	}

	a.log.Info("Showing figure, close the window to exit")
	if err := a.display.Show(cfg.WindowTitle, img); err != nil {
		return errors.Wrap(err, StageRender)
	}
	return nil
}

// warnMissing logs routes that have no rows at some injection rate. Those
// points are plotted as gaps.
func (a *App) warnMissing(agg *analysis.AggregatedMetric) {
	for _, s := range agg.Series {
		if n := s.MissingPoints(); n > 0 {
			a.log.WithFields(logrus.Fields{
				"metric":  agg.Metric,
				"route":   s.Route,
				"missing": n,
			}).Warn("Route has no samples at some injection rates, mean is NaN")
		}
	}
}
