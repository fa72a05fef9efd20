// Package diagnostics runs the four assumption tests of the fitted sales
// regression: Durbin-Watson for residual autocorrelation, studentized
// Breusch-Pagan for heteroscedasticity, Lilliefors for residual normality,
// and variance inflation factors for predictor multicollinearity.
package diagnostics

import (
	"errors"

	"github.com/quantara/salesdash/dataset"
	"github.com/quantara/salesdash/regression"
)

// DefaultAlpha is the conventional significance threshold used to derive
// verdicts when none is configured.
const DefaultAlpha = 0.05

var (
	ErrModelUnavailable     = errors.New("model unavailable, diagnostics skipped")
	ErrShortResiduals       = errors.New("not enough residuals")
	ErrZeroResidualVariance = errors.New("residuals have zero variance")
	ErrMinimumFeatures      = errors.New("need at least 2 features to compute VIF")
	ErrFeatureLenMismatch   = errors.New("some feature length is not consistent")
	ErrFeatureLen           = errors.New("must have at least 2 points per feature")
)

// Result is the outcome of one hypothesis test.
type Result struct {
	Name      string  `json:"name"`
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	Verdict   string  `json:"verdict"`
}

// Report bundles all four assumption tests for one fitted model.
type Report struct {
	Alpha        float64     `json:"alpha"`
	DurbinWatson Result      `json:"durbin_watson"`
	BreuschPagan Result      `json:"breusch_pagan"`
	Lilliefors   Result      `json:"lilliefors"`
	VIF          []VIFResult `json:"vif"`
}

// Run executes all four assumption tests against the fitted model and the
// compiled-in dataset. A nil model reports ErrModelUnavailable so callers
// show an unavailable state instead of bogus test output.
func Run(fm *regression.FittedModel, alpha float64) (*Report, error) {
	if fm == nil {
		return nil, ErrModelUnavailable
	}
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}

	dw, err := DurbinWatson(fm.Residuals)
	if err != nil {
		return nil, err
	}

	bp, err := BreuschPagan(dataset.PredictorMatrix(), fm.Residuals, alpha)
	if err != nil {
		return nil, err
	}

	lf, err := Lilliefors(fm.Residuals, alpha)
	if err != nil {
		return nil, err
	}

	names := dataset.PredictorNames()
	cols := make([][]float64, len(names))
	for i := range cols {
		cols[i] = dataset.Column(i)
	}
	vif, err := VIF(names, cols)
	if err != nil {
		return nil, err
	}

	return &Report{
		Alpha:        alpha,
		DurbinWatson: dw,
		BreuschPagan: bp,
		Lilliefors:   lf,
		VIF:          vif,
	}, nil
}
