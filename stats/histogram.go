package stats

import (
	"fmt"
	"math"
)

// Histogram is an equal-width binning of one column, render-ready for a bar
// chart.
type Histogram struct {
	Name   string    `json:"name"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
	Labels []string  `json:"labels"`
}

// NewHistogram bins values into bins equal-width buckets. A non-positive
// bin count selects Sturges' rule. The last bin is closed on the right so
// the maximum lands in it.
func NewHistogram(name string, values []float64, bins int) (Histogram, error) {
	if len(values) == 0 {
		return Histogram{}, ErrNoValues
	}
	if bins <= 0 {
		bins = SturgesBins(len(values))
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		// degenerate column, single bin holds everything
		return Histogram{
			Name:   name,
			Edges:  []float64{lo, hi},
			Counts: []int{len(values)},
			Labels: []string{binLabel(lo, hi)},
		}, nil
	}

	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	labels := make([]string, bins)
	for i := range labels {
		labels[i] = binLabel(edges[i], edges[i+1])
	}

	return Histogram{
		Name:   name,
		Edges:  edges,
		Counts: counts,
		Labels: labels,
	}, nil
}

// SturgesBins returns the Sturges' rule bin count for n observations.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

func binLabel(lo, hi float64) string {
	return fmt.Sprintf("%s - %s", trimFloat(lo), trimFloat(hi))
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
