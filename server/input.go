package server

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gonum.org/v1/gonum/stat"

	"github.com/quantara/salesdash/dataset"
	"github.com/quantara/salesdash/regression"
)

// defaultInput seeds the prediction widgets with the training column means.
func defaultInput() regression.PredictionInput {
	return regression.PredictionInput{
		AdSpend:       columnMean(0),
		StoreVisits:   columnMean(1),
		SalesReps:     columnMean(2),
		ServiceRating: columnMean(3),
		PromoSpend:    columnMean(4),
	}
}

func columnMean(i int) float64 {
	return stat.Mean(dataset.Column(i), nil)
}

// parseInput builds a PredictionInput from the request query. Absent
// parameters fall back to the defaults; malformed or out-of-range values are
// rejected before any model evaluation.
func parseInput(c *gin.Context) (regression.PredictionInput, error) {
	in := defaultInput()

	fields := []struct {
		name string
		dst  *float64
	}{
		{"ad_spend", &in.AdSpend},
		{"store_visits", &in.StoreVisits},
		{"sales_reps", &in.SalesReps},
		{"service_rating", &in.ServiceRating},
		{"promo_spend", &in.PromoSpend},
	}
	for _, f := range fields {
		raw, ok := c.GetQuery(f.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, fmt.Errorf("%s=%q is not numeric, %w", f.name, raw, regression.ErrInvalidInput)
		}
		*f.dst = v
	}

	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}
