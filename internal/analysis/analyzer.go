package analysis

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/user/noxim_plot_go/internal/config"
	"github.com/user/noxim_plot_go/internal/parser"
)

// Aggregate averages metric over every (route, pir) group of the dataset.
//
// Each route gets one point per distinct pir of the whole dataset, in the order
// the rates first appear in the file, so all series have the same length. A
// route with no rows at some rate gets NaN there: the mean of an empty group.
func Aggregate(ds *parser.Dataset, metric string) (*AggregatedMetric, error) {
	if ds == nil {
		return nil, errors.New("dataset is nil, cannot aggregate")
	}
	if !isMetric(metric) {
		return nil, errors.Errorf("unknown metric column %q", metric)
	}

	pirs := ds.PIRs()
	result := &AggregatedMetric{
		Metric: metric,
		PIRs:   pirs,
		Series: make([]Series, 0),
	}

	for _, route := range ds.Routes() {
		groups := groupByPIR(ds, route, metric)

		s := Series{Route: route, Points: make([]Point, 0, len(pirs))}
		for _, pir := range pirs {
			// stat.Mean of an empty group is 0/0.
			s.Points = append(s.Points, Point{PIR: pir, Value: stat.Mean(groups[pirKey(pir)], nil)})
		}
		result.Series = append(result.Series, s)
	}
	return result, nil
}

// AggregateAll aggregates the metric of every chart, in chart order.
func AggregateAll(ds *parser.Dataset, charts []config.ChartSpec) ([]*AggregatedMetric, error) {
	out := make([]*AggregatedMetric, 0, len(charts))
	for _, ch := range charts {
		agg, err := Aggregate(ds, ch.Metric)
		if err != nil {
			return nil, errors.Wrapf(err, "chart %q", ch.Title)
		}
		out = append(out, agg)
	}
	return out, nil
}

// groupByPIR collects the metric values of one route keyed by injection rate.
// A row with a NaN rate never equals any rate, so it joins no group.
func groupByPIR(ds *parser.Dataset, route, metric string) map[uint64][]float64 {
	groups := make(map[uint64][]float64)
	for _, row := range ds.Rows {
		if row.Route != route || math.IsNaN(row.PIR) {
			continue
		}
		k := pirKey(row.PIR)
		groups[k] = append(groups[k], row.Values[metric])
	}
	return groups
}

// pirKey folds -0 into 0 so equal rates share a group.
func pirKey(pir float64) uint64 {
	if pir == 0 {
		return 0
	}
	return math.Float64bits(pir)
}

func isMetric(name string) bool {
	for _, m := range config.MetricColumns {
		if m == name {
			return true
		}
	}
	return false
}
