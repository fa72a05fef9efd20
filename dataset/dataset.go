// Package dataset holds the fixed monthly sales observations the dashboard
// is built around. The table is compiled into the binary and never mutated;
// accessors hand out copies so callers cannot corrupt the source data.
package dataset

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"gonum.org/v1/gonum/mat"
)

const (
	// NumObservations is the number of monthly rows in the fixed table.
	NumObservations = 12
	// NumPredictors is the number of predictor columns used in fitting.
	NumPredictors = 5

	// Year is the calendar year the monthly observations cover.
	Year = 2023
)

// Observation is a single monthly row. Month is informational only and is
// excluded from fitting. The predictors carry a spend/visits semantic:
// AdSpend and PromoSpend in currency units, StoreVisits as a count,
// SalesReps as a head count, and ServiceRating on a 1-10 scale.
type Observation struct {
	Month         string  `json:"month"`
	AdSpend       float64 `json:"ad_spend"`
	StoreVisits   float64 `json:"store_visits"`
	SalesReps     float64 `json:"sales_reps"`
	ServiceRating float64 `json:"service_rating"`
	PromoSpend    float64 `json:"promo_spend"`
	Sales         float64 `json:"sales"`
}

// Predictors returns the five predictor values in fitting order.
func (o Observation) Predictors() []float64 {
	return []float64{o.AdSpend, o.StoreVisits, o.SalesReps, o.ServiceRating, o.PromoSpend}
}

var observations = [NumObservations]Observation{
	{"January", 150000, 8200, 3, 6, 21000, 401000},
	{"February", 162500, 8700, 4, 5, 24000, 442000},
	{"March", 158000, 9300, 4, 7, 22500, 458000},
	{"April", 171000, 9800, 5, 6, 26000, 491000},
	{"May", 180500, 10400, 5, 7, 27500, 522000},
	{"June", 176000, 11100, 6, 8, 25000, 541000},
	{"July", 189000, 11600, 6, 7, 29500, 567000},
	{"August", 198500, 12300, 7, 8, 31000, 601000},
	{"September", 205000, 12900, 7, 9, 33500, 629000},
	{"October", 217500, 13800, 8, 8, 36000, 661000},
	{"November", 226000, 14600, 8, 9, 38500, 694000},
	{"December", 240000, 15700, 9, 9, 41000, 741000},
}

var predictorNames = [NumPredictors]string{
	"ad_spend", "store_visits", "sales_reps", "service_rating", "promo_spend",
}

// Table returns a copy of all twelve observations in month order.
func Table() []Observation {
	rows := make([]Observation, NumObservations)
	copy(rows, observations[:])
	return rows
}

// PredictorNames returns the predictor column names in fitting order.
func PredictorNames() []string {
	names := make([]string, NumPredictors)
	copy(names, predictorNames[:])
	return names
}

// OutcomeName returns the name of the outcome column.
func OutcomeName() string {
	return "sales"
}

// PredictorMatrix returns the 12x5 design matrix of predictor columns with
// the month label excluded. The intercept column is not included; the model
// layer stacks it during fitting.
func PredictorMatrix() *mat.Dense {
	x := mat.NewDense(NumObservations, NumPredictors, nil)
	for i, o := range observations {
		x.SetRow(i, o.Predictors())
	}
	return x
}

// Outcome returns the outcome column as a slice.
func Outcome() []float64 {
	y := make([]float64, NumObservations)
	for i, o := range observations {
		y[i] = o.Sales
	}
	return y
}

// Column returns the predictor column at index i in fitting order.
func Column(i int) []float64 {
	col := make([]float64, NumObservations)
	for j, o := range observations {
		col[j] = o.Predictors()[i]
	}
	return col
}

// MonthLabels returns the month labels in row order.
func MonthLabels() []string {
	labels := make([]string, NumObservations)
	for i, o := range observations {
		labels[i] = o.Month
	}
	return labels
}

// BusinessDays returns the number of US business days in each observed month.
// Shown alongside the raw table so monthly sales can be eyeballed against
// trading-day counts.
func BusinessDays() []int {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(us.Holidays...)

	days := make([]int, NumObservations)
	for i := range observations {
		start := time.Date(Year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		days[i] = c.WorkdaysInRange(start, end)
	}
	return days
}
