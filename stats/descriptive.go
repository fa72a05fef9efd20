// Package stats computes the descriptive summaries and histogram binning
// shown on the dashboard's first view.
package stats

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

var ErrNoValues = errors.New("no values to summarize")

// Summary holds the descriptive statistics of one column.
type Summary struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	Outliers int     `json:"outliers"`
}

// Describe summarizes a single column of values. The standard deviation is
// the sample standard deviation and the outlier count uses Tukey fences on
// the quartiles.
func Describe(name string, values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}

	data := stats.Float64Data(values)

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing %s, %w", name, err)
	}
	sd, err := stats.StandardDeviationSample(data)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing %s, %w", name, err)
	}
	minV, err := data.Min()
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing %s, %w", name, err)
	}
	maxV, err := data.Max()
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing %s, %w", name, err)
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing %s, %w", name, err)
	}
	quartiles, err := stats.Quartile(data)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing %s, %w", name, err)
	}
	outliers, err := stats.QuartileOutliers(data)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing %s, %w", name, err)
	}

	return Summary{
		Name:     name,
		Count:    len(values),
		Mean:     mean,
		StdDev:   sd,
		Min:      minV,
		Q1:       quartiles.Q1,
		Median:   median,
		Q3:       quartiles.Q3,
		Max:      maxV,
		Outliers: len(outliers.Mild) + len(outliers.Extreme),
	}, nil
}
