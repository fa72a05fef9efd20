package regression

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mat_ "github.com/quantara/salesdash/mat"
	"github.com/quantara/salesdash/models"
)

// reference values computed once with an independent least squares solver
// on the fixed dataset
var (
	refIntercept = 23910.63757486
	refCoef      = []float64{1.18480991, 12.33240355, 16378.75357573, 6669.74760692, 0.80768542}

	refStdErr = []float64{96784.81167417, 1.49762272, 10.79836479, 7228.37878174, 4032.48618785, 4.38220835}
	refPValue = []float64{0.8131059791, 0.4589917494, 0.2969470536, 0.0640275373, 0.1492106196, 0.8598417690}

	refR2    = 0.998572179789
	refAdjR2 = 0.997382329613
	refFStat = 839.24194828
)

func TestFitDataset(t *testing.T) {
	fm, err := FitDataset()
	require.Nil(t, err)

	assert.InDelta(t, refIntercept, fm.Intercept, 1e-3)
	assert.InDeltaSlice(t, refCoef, fm.Coef, 1e-4)

	assert.InDelta(t, refR2, fm.R2, 1e-9)
	assert.InDelta(t, refAdjR2, fm.AdjR2, 1e-9)
	assert.InDelta(t, refFStat, fm.FStat, 1e-4)
	assert.InDelta(t, 1.9072e-8, fm.FPValue, 1e-11)

	require.Len(t, fm.Summary, 6)
	for i, coef := range fm.Summary {
		assert.InEpsilon(t, refStdErr[i], coef.StdErr, 1e-6, "std err %s", coef.Name)
		assert.InDelta(t, refPValue[i], coef.PValue, 1e-6, "p-value %s", coef.Name)
	}

	assert.Equal(t, 12, fm.NumObs)
	assert.Equal(t, 6, fm.DFResidual)

	// residuals reconstruct the outcome
	require.Len(t, fm.Fitted, 12)
	require.Len(t, fm.Residuals, 12)
	for i := range fm.Fitted {
		assert.False(t, math.IsNaN(fm.Fitted[i]))
	}
}

func TestFitDeterministic(t *testing.T) {
	first, err := FitDataset()
	require.Nil(t, err)
	second, err := FitDataset()
	require.Nil(t, err)

	assert.Equal(t, first.Intercept, second.Intercept)
	assert.Equal(t, first.Coef, second.Coef)
	assert.Equal(t, first.Fitted, second.Fitted)
}

func TestFitRankDeficient(t *testing.T) {
	// second column duplicates the first
	x, err := mat_.NewDenseFromRows([][]float64{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6},
	})
	require.Nil(t, err)

	_, err = Fit(x, []float64{1, 2, 3, 4, 5, 6}, []string{"a", "b"}, "y")
	require.ErrorIs(t, err, ErrModelFit)
	assert.ErrorIs(t, err, models.ErrRankDeficient)
}

func TestFitArgumentErrors(t *testing.T) {
	x, err := mat_.NewDenseFromRows([][]float64{
		{1, 2}, {2, 1}, {3, 5}, {4, 2}, {5, 9}, {6, 1},
	})
	require.Nil(t, err)

	testData := map[string]struct {
		y     []float64
		names []string
	}{
		"target length mismatch": {
			y:     []float64{1, 2, 3},
			names: []string{"a", "b"},
		},
		"name count mismatch": {
			y:     []float64{1, 2, 3, 4, 5, 6},
			names: []string{"a"},
		},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := Fit(x, td.y, td.names, "y")
			assert.ErrorIs(t, err, ErrModelFit)
		})
	}

	t.Run("too few observations", func(t *testing.T) {
		small, err := mat_.NewDenseFromRows([][]float64{{1, 2}, {2, 1}, {3, 5}})
		require.Nil(t, err)
		_, err = Fit(small, []float64{1, 2, 3}, []string{"a", "b"}, "y")
		assert.ErrorIs(t, err, ErrModelFit)
	})
}

func TestPredict(t *testing.T) {
	fm, err := FitDataset()
	require.Nil(t, err)

	t.Run("pinned scenario", func(t *testing.T) {
		predicted, err := fm.Predict(PredictionInput{
			AdSpend:       200000,
			StoreVisits:   10000,
			SalesReps:     5,
			ServiceRating: 8,
			PromoSpend:    30000,
		})
		require.Nil(t, err)
		assert.InDelta(t, 543678.96649702, predicted, 1e-3)
	})

	t.Run("matches linear evaluation", func(t *testing.T) {
		inputs := []PredictionInput{
			{AdSpend: 0, StoreVisits: 0, SalesReps: 0, ServiceRating: 1, PromoSpend: 0},
			{AdSpend: 1e7, StoreVisits: -5000, SalesReps: 40, ServiceRating: 10, PromoSpend: 2.5},
			{AdSpend: 123.456, StoreVisits: 789.01, SalesReps: 2.5, ServiceRating: 3.3, PromoSpend: -1},
		}
		for _, in := range inputs {
			predicted, err := fm.Predict(in)
			require.Nil(t, err)

			expected := fm.Intercept
			for i, v := range in.Vector() {
				expected += fm.Coef[i] * v
			}
			assert.InDelta(t, expected, predicted, 1e-9)
		}
	})
}

func TestPredictionInputValidate(t *testing.T) {
	testData := map[string]struct {
		in  PredictionInput
		err error
	}{
		"valid": {
			PredictionInput{AdSpend: 200000, StoreVisits: 10000, SalesReps: 5, ServiceRating: 8, PromoSpend: 30000},
			nil,
		},
		"valid extrapolation": {
			PredictionInput{AdSpend: 1e9, StoreVisits: -1, SalesReps: 100, ServiceRating: 1, PromoSpend: 0},
			nil,
		},
		"nan value": {
			PredictionInput{AdSpend: math.NaN(), ServiceRating: 5},
			ErrInvalidInput,
		},
		"infinite value": {
			PredictionInput{PromoSpend: math.Inf(1), ServiceRating: 5},
			ErrInvalidInput,
		},
		"rating below widget range": {
			PredictionInput{ServiceRating: 0.5},
			ErrInvalidInput,
		},
		"rating above widget range": {
			PredictionInput{ServiceRating: 10.5},
			ErrInvalidInput,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.in.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestEquation(t *testing.T) {
	fm, err := FitDataset()
	require.Nil(t, err)

	expected := "sales = 23910.6376 + 1.1848*ad_spend + 12.3324*store_visits + " +
		"16378.7536*sales_reps + 6669.7476*service_rating + 0.8077*promo_spend"
	assert.Equal(t, expected, fm.Equation())
}

func TestEquationNegativeCoef(t *testing.T) {
	fm := &FittedModel{
		OutcomeName: "y",
		Names:       []string{"a", "b"},
		Intercept:   -1.5,
		Coef:        []float64{-2.25, 3.0},
	}
	assert.Equal(t, "y = -1.5000 - 2.2500*a + 3.0000*b", fm.Equation())
}

func TestTablePrint(t *testing.T) {
	fm, err := FitDataset()
	require.Nil(t, err)

	var b strings.Builder
	require.Nil(t, fm.TablePrint(&b, "", "  "))

	out := b.String()
	assert.Contains(t, out, "Sales Regression:")
	assert.Contains(t, out, "sales = 23910.6376")
	assert.Contains(t, out, "intercept")
	assert.Contains(t, out, "service_rating")
}
