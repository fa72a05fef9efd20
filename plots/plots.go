// Package plots builds the echart views of the dashboard: column
// histograms, the pairwise scatter matrix, the fitted-versus-actual series,
// and the prediction overlay.
package plots

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/quantara/salesdash/dataset"
	"github.com/quantara/salesdash/regression"
	"github.com/quantara/salesdash/stats"
)

// HistogramBar generates a bar chart for a binned column.
func HistogramBar(h stats.Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: h.Name,
			},
		),
	)

	barData := make([]opts.BarData, 0, len(h.Counts))
	for _, c := range h.Counts {
		barData = append(barData, opts.BarData{Value: c})
	}

	bar.SetXAxis(h.Labels).AddSeries("count", barData)
	return bar
}

// Pairwise generates one scatter chart per unordered pair of columns across
// the five predictors and the outcome.
func Pairwise() []*charts.Scatter {
	names := append(dataset.PredictorNames(), dataset.OutcomeName())
	cols := make([][]float64, 0, len(names))
	for i := 0; i < dataset.NumPredictors; i++ {
		cols = append(cols, dataset.Column(i))
	}
	cols = append(cols, dataset.Outcome())

	var scatters []*charts.Scatter
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			scatters = append(scatters, scatterPair(names[i], names[j], cols[i], cols[j]))
		}
	}
	return scatters
}

func scatterPair(xName, yName string, x, y []float64) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: fmt.Sprintf("%s vs %s", yName, xName),
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: xName,
				Type: "value",
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: yName,
				Type: "value",
			},
		),
	)

	scatterData := make([]opts.ScatterData, 0, len(x))
	for i := range x {
		scatterData = append(scatterData, opts.ScatterData{Value: []interface{}{x[i], y[i]}})
	}
	sc.AddSeries(yName, scatterData)
	return sc
}

// FittedLine generates the actual versus fitted line chart over the twelve
// observed months.
func FittedLine(fm *regression.FittedModel) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Actual vs Fitted Sales",
			},
		),
	)

	actual := dataset.Outcome()
	lineDataActual := make([]opts.LineData, 0, len(actual))
	lineDataFitted := make([]opts.LineData, 0, len(fm.Fitted))
	for i := range actual {
		lineDataActual = append(lineDataActual, opts.LineData{Value: actual[i]})
		lineDataFitted = append(lineDataFitted, opts.LineData{Value: fm.Fitted[i]})
	}

	line.SetXAxis(dataset.MonthLabels()).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fitted", lineDataFitted)
	return line
}

// PredictionOverlay plots the twelve historical outcomes with the
// hypothetical prediction point appended as an extra category.
func PredictionOverlay(predicted float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Prediction vs Historical Sales",
			},
		),
	)

	actual := dataset.Outcome()
	lineData := make([]opts.LineData, 0, len(actual))
	for _, v := range actual {
		lineData = append(lineData, opts.LineData{Value: v})
	}

	labels := append(dataset.MonthLabels(), "hypothetical")
	line.SetXAxis(labels).AddSeries("Historical", lineData)

	sc := charts.NewScatter()
	sc.AddSeries("Prediction", []opts.ScatterData{
		{
			Value:      []interface{}{len(actual), predicted},
			SymbolSize: 15,
		},
	})
	line.Overlap(sc)
	return line
}
