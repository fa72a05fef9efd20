package diagnostics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantara/salesdash/dataset"
	mat_ "github.com/quantara/salesdash/mat"
	"github.com/quantara/salesdash/models"
	"github.com/quantara/salesdash/regression"
)

func fitModel(t *testing.T) *regression.FittedModel {
	t.Helper()
	fm, err := regression.FitDataset()
	require.Nil(t, err)
	return fm
}

func TestDurbinWatsonDataset(t *testing.T) {
	fm := fitModel(t)

	res, err := DurbinWatson(fm.Residuals)
	require.Nil(t, err)

	assert.InDelta(t, 1.9554871428, res.Statistic, 1e-6)
	assert.InDelta(t, 0.9385451622, res.PValue, 1e-6)
	assert.Equal(t, VerdictNoAutocorrelation, res.Verdict)
}

func TestDurbinWatsonRanges(t *testing.T) {
	t.Run("statistic within bounds for iid noise", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		residuals := make([]float64, 200)
		for i := range residuals {
			residuals[i] = rnd.NormFloat64()
		}

		res, err := DurbinWatson(residuals)
		require.Nil(t, err)
		assert.GreaterOrEqual(t, res.Statistic, 0.0)
		assert.LessOrEqual(t, res.Statistic, 4.0)
		assert.InDelta(t, 2.0, res.Statistic, 0.5)
	})

	t.Run("alternating residuals flag negative autocorrelation", func(t *testing.T) {
		residuals := make([]float64, 50)
		for i := range residuals {
			residuals[i] = 1.0
			if i%2 == 1 {
				residuals[i] = -1.0
			}
		}

		res, err := DurbinWatson(residuals)
		require.Nil(t, err)
		assert.Greater(t, res.Statistic, dwNegativeBound)
		assert.Equal(t, VerdictNegativeAutocorrelation, res.Verdict)
	})

	t.Run("constant residuals flag positive autocorrelation", func(t *testing.T) {
		residuals := []float64{3, 3, 3, 3, 3, 3, 3, 3}

		res, err := DurbinWatson(residuals)
		require.Nil(t, err)
		assert.Equal(t, 0.0, res.Statistic)
		assert.Equal(t, VerdictPositiveAutocorrelation, res.Verdict)
	})
}

func TestDurbinWatsonErrors(t *testing.T) {
	_, err := DurbinWatson([]float64{1})
	assert.ErrorIs(t, err, ErrShortResiduals)

	_, err = DurbinWatson([]float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrZeroResidualVariance)
}

func TestBreuschPaganDataset(t *testing.T) {
	fm := fitModel(t)

	res, err := BreuschPagan(dataset.PredictorMatrix(), fm.Residuals, DefaultAlpha)
	require.Nil(t, err)

	assert.InDelta(t, 4.1827242560, res.Statistic, 1e-5)
	assert.InDelta(t, 0.5234194148, res.PValue, 1e-5)
	assert.Equal(t, VerdictHomoscedastic, res.Verdict)
}

func TestBreuschPaganNonNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	rows := make([][]float64, 40)
	residuals := make([]float64, 40)
	for i := range rows {
		rows[i] = []float64{rnd.Float64() * 10, rnd.Float64() * 100}
		residuals[i] = rnd.NormFloat64()
	}
	x, err := mat_.NewDenseFromRows(rows)
	require.Nil(t, err)

	res, err := BreuschPagan(x, residuals, DefaultAlpha)
	require.Nil(t, err)
	assert.GreaterOrEqual(t, res.Statistic, 0.0)
	assert.GreaterOrEqual(t, res.PValue, 0.0)
	assert.LessOrEqual(t, res.PValue, 1.0)
}

func TestBreuschPaganHomoscedasticTrials(t *testing.T) {
	// under constant residual variance the p-value is roughly uniform, so it
	// should clear the 0.05 threshold in about 95% of simulations
	rnd := rand.New(rand.NewSource(11))

	const (
		trials = 200
		n      = 60
	)
	cleared := 0
	for trial := 0; trial < trials; trial++ {
		rows := make([][]float64, n)
		residuals := make([]float64, n)
		for i := range rows {
			rows[i] = []float64{rnd.Float64() * 10, rnd.Float64() * 100, rnd.NormFloat64()}
			residuals[i] = rnd.NormFloat64()
		}
		x, err := mat_.NewDenseFromRows(rows)
		require.Nil(t, err)

		res, err := BreuschPagan(x, residuals, DefaultAlpha)
		require.Nil(t, err)
		require.GreaterOrEqual(t, res.Statistic, 0.0)

		if res.PValue > DefaultAlpha {
			cleared++
		}
	}

	assert.GreaterOrEqual(t, cleared, 170, "homoscedastic residuals flagged too often: %d/%d cleared", cleared, trials)
}

func TestBreuschPaganErrors(t *testing.T) {
	x, err := mat_.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Nil(t, err)

	_, err = BreuschPagan(nil, []float64{1, 2, 3}, DefaultAlpha)
	assert.ErrorIs(t, err, models.ErrNoTrainingMatrix)

	_, err = BreuschPagan(x, []float64{1, 2}, DefaultAlpha)
	assert.ErrorIs(t, err, models.ErrTargetLenMismatch)

	_, err = BreuschPagan(x, []float64{1, 2, 3}, DefaultAlpha)
	assert.ErrorIs(t, err, ErrShortResiduals)
}

func TestLillieforsDataset(t *testing.T) {
	fm := fitModel(t)

	res, err := Lilliefors(fm.Residuals, DefaultAlpha)
	require.Nil(t, err)

	assert.InDelta(t, 0.1578878633, res.Statistic, 1e-6)
	assert.InDelta(t, 0.6274712532, res.PValue, 1e-5)
	assert.Equal(t, VerdictResidualsNormal, res.Verdict)
}

func TestLillieforsErrors(t *testing.T) {
	_, err := Lilliefors([]float64{1, 2, 3}, DefaultAlpha)
	assert.ErrorIs(t, err, ErrShortResiduals)

	_, err = Lilliefors([]float64{5, 5, 5, 5, 5}, DefaultAlpha)
	assert.ErrorIs(t, err, ErrZeroResidualVariance)
}

func TestVIFDataset(t *testing.T) {
	names := dataset.PredictorNames()
	cols := make([][]float64, len(names))
	for i := range cols {
		cols[i] = dataset.Column(i)
	}

	results, err := VIF(names, cols)
	require.Nil(t, err)
	require.Len(t, results, len(names))

	expected := []float64{677.20215447, 249.78814488, 67.54769467, 10.46491050, 301.55163800}
	for i, res := range results {
		assert.Equal(t, names[i], res.Name)
		assert.InEpsilon(t, expected[i], res.VIF, 1e-5, names[i])
		assert.Equal(t, VerdictCollinearitySevere, res.Verdict, names[i])
	}
}

func TestVIFOrthogonal(t *testing.T) {
	// zero-mean orthogonal design columns
	cols := [][]float64{
		{1, -1, 1, -1},
		{1, 1, -1, -1},
	}

	results, err := VIF([]string{"a", "b"}, cols)
	require.Nil(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.InDelta(t, 1.0, res.VIF, 1e-9, res.Name)
		assert.Equal(t, VerdictCollinearityLow, res.Verdict)
	}
}

func TestVIFNearPerfectCollinearity(t *testing.T) {
	base := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	twin := make([]float64, len(base))
	for i, v := range base {
		twin[i] = v + 1e-9*float64(i%2)
	}

	results, err := VIF([]string{"a", "b"}, [][]float64{base, twin})
	require.Nil(t, err)
	for _, res := range results {
		if math.IsInf(res.VIF, 1) {
			continue
		}
		assert.Greater(t, res.VIF, 1e6, res.Name)
	}
}

func TestVIFResultMarshalJSON(t *testing.T) {
	testData := map[string]struct {
		result   VIFResult
		expected string
	}{
		"finite factor": {
			result:   VIFResult{Name: "a", RSquared: 0.75, VIF: 4, Verdict: VerdictCollinearityLow},
			expected: `{"name":"a","r_squared":0.75,"vif":4,"verdict":"low multicollinearity"}`,
		},
		"unbounded factor": {
			result:   VIFResult{Name: "b", RSquared: 1, VIF: math.Inf(1), Verdict: VerdictCollinearitySevere},
			expected: `{"name":"b","r_squared":1,"vif":null,"verdict":"severe multicollinearity"}`,
		},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			body, err := json.Marshal(td.result)
			require.Nil(t, err)
			assert.Equal(t, td.expected, string(body))
		})
	}
}

func TestVIFErrors(t *testing.T) {
	_, err := VIF([]string{"a"}, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrMinimumFeatures)

	_, err = VIF([]string{"a"}, [][]float64{{1, 2}, {3, 4}})
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)

	_, err = VIF([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4, 5}})
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)

	_, err = VIF([]string{"a", "b"}, [][]float64{{1}, {3}})
	assert.ErrorIs(t, err, ErrFeatureLen)
}

func TestRun(t *testing.T) {
	fm := fitModel(t)

	report, err := Run(fm, 0)
	require.Nil(t, err)

	assert.Equal(t, DefaultAlpha, report.Alpha)
	assert.Equal(t, "Durbin-Watson", report.DurbinWatson.Name)
	assert.Equal(t, "Breusch-Pagan", report.BreuschPagan.Name)
	assert.Equal(t, "Lilliefors", report.Lilliefors.Name)
	assert.Len(t, report.VIF, dataset.NumPredictors)
}

func TestRunModelUnavailable(t *testing.T) {
	_, err := Run(nil, DefaultAlpha)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}
