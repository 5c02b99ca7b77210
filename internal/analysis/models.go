package analysis

import "math"

// Point is the mean of one metric for a single injection rate.
type Point struct {
	PIR   float64
	Value float64 // NaN when the route has no rows at this rate
}

// Series is the aggregated curve of one route.
type Series struct {
	Route  string
	Points []Point
}

// MissingPoints counts the rates at which the route had no rows.
func (s Series) MissingPoints() int {
	n := 0
	for _, p := range s.Points {
		if math.IsNaN(p.Value) {
			n++
		}
	}
	return n
}

// AggregatedMetric holds one Series per route, in first-seen route order.
type AggregatedMetric struct {
	Metric string
	PIRs   []float64
	Series []Series
}
