package config

import (
	"github.com/pkg/errors"

	"gonum.org/v1/plot/vg"
)

// Column names as written by the Noxim simulator. AvgIPThroughput keeps the
// simulator's spelling so existing result files load unchanged.
const (
	RouteColumn     = "route"
	PIRColumn       = "pir"
	DelayColumn     = "global_avg_delay_cycles"
	AvgIPThroughput = "avg_ip_throuput"
)

// RequiredColumns lists the header names a result file must provide.
var RequiredColumns = []string{RouteColumn, PIRColumn, DelayColumn, AvgIPThroughput}

// MetricColumns lists the numeric columns that can be aggregated and plotted.
var MetricColumns = []string{DelayColumn, AvgIPThroughput}

const PIRAxisLabel = "Packet injection rate (flit/cycle/tile)"

// LabelStyle selects how a route name is turned into a legend label.
type LabelStyle int

const (
	// LabelPretty replaces underscores with spaces and lowercases the route.
	LabelPretty LabelStyle = iota
	// LabelRaw uses the route string as found in the file.
	LabelRaw
)

// ChartSpec describes one chart: which metric to average and how to label it.
type ChartSpec struct {
	Metric string
	YLabel string
	Title  string
}

var (
	DelayChart = ChartSpec{
		Metric: DelayColumn,
		YLabel: "Average delay (cycle)",
		Title:  "Delay",
	}
	ThroughputChart = ChartSpec{
		Metric: AvgIPThroughput,
		YLabel: "Average IP throughput (flit/cycle/tile)",
		Title:  "Packet Throughput",
	}
)

// Config is everything one run of the plotting pipeline needs.
type Config struct {
	File        string
	Charts      []ChartSpec
	Labels      LabelStyle
	WindowTitle string
	// Size of the whole figure; charts share the width equally.
	Width  vg.Length
	Height vg.Length
}

// DelayAndThroughput returns the two chart configuration: delay and throughput side by side.
func DelayAndThroughput(file string) Config {
	return Config{
		File:        file,
		Charts:      []ChartSpec{DelayChart, ThroughputChart},
		Labels:      LabelPretty,
		WindowTitle: "Noxim delay and throughput",
		Width:       vg.Points(1200),
		Height:      vg.Points(480),
	}
}

// DelayOnly returns the single chart configuration with raw route labels.
func DelayOnly(file string) Config {
	return Config{
		File:        file,
		Charts:      []ChartSpec{DelayChart},
		Labels:      LabelRaw,
		WindowTitle: "Noxim delay",
		Width:       vg.Points(640),
		Height:      vg.Points(480),
	}
}

// Validate reports the first problem that would stop the pipeline from running.
func (c Config) Validate() error {
	if c.File == "" {
		return errors.New("no input file given")
	}
	if len(c.Charts) == 0 {
		return errors.New("no charts configured")
	}
	for i, ch := range c.Charts {
		if !isMetricColumn(ch.Metric) {
			return errors.Errorf("chart %d: unknown metric column %q", i+1, ch.Metric)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid figure size %vx%v", c.Width, c.Height)
	}
	return nil
}

func isMetricColumn(name string) bool {
	for _, m := range MetricColumns {
		if m == name {
			return true
		}
	}
	return false
}
