// Package chart turns raw numeric data into the declarative series the
// charting engines draw. Building a series is pure; drawing lives in
// render.go.
package chart

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDataPoint is returned when a value is NaN or infinite.
var ErrInvalidDataPoint = errors.New("chart: invalid data point")

// Kind selects how an engine draws a series.
type Kind string

const (
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

// Point is a single labelled value. Labels may repeat.
type Point struct {
	Label string
	Value float64
}

// Series is an ordered, immutable run of points.
type Series struct {
	name   string
	points []Point
}

// BuildSeries validates raw and copies it into a new Series. Input order and
// length are kept exactly; nothing is aggregated or smoothed.
func BuildSeries(name string, raw []Point) (Series, error) {
	points := make([]Point, len(raw))
	for i, p := range raw {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return Series{}, fmt.Errorf("%w: point %d (%q) has value %v", ErrInvalidDataPoint, i, p.Label, p.Value)
		}
		points[i] = p
	}
	return Series{name: name, points: points}, nil
}

// Name returns the series name shown in legends.
func (s Series) Name() string { return s.name }

// Len returns the number of points.
func (s Series) Len() int { return len(s.points) }

// Points returns a copy of the points.
func (s Series) Points() []Point {
	return append([]Point(nil), s.points...)
}

// Labels returns the point labels in order.
func (s Series) Labels() []string {
	out := make([]string, len(s.points))
	for i, p := range s.points {
		out[i] = p.Label
	}
	return out
}

// Values returns the point values in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = p.Value
	}
	return out
}

// Bounds returns the smallest and largest value. Both are zero for an empty
// series.
func (s Series) Bounds() (lo, hi float64) {
	for i, p := range s.points {
		if i == 0 || p.Value < lo {
			lo = p.Value
		}
		if i == 0 || p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi
}
