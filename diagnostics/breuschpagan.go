package diagnostics

import (
	"fmt"

	"github.com/quantara/salesdash/models"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	VerdictHomoscedastic   = "homoscedastic"
	VerdictHeteroscedastic = "heteroscedastic"
)

// BreuschPagan runs the studentized (Koenker) Breusch-Pagan test: the
// squared residuals are regressed on the original predictors and the test
// statistic is n*R2 of that auxiliary regression, chi-squared with one
// degree of freedom per predictor under the null of constant variance.
func BreuschPagan(x mat.Matrix, residuals []float64, alpha float64) (Result, error) {
	if x == nil {
		return Result{}, models.ErrNoTrainingMatrix
	}
	m, n := x.Dims()
	if len(residuals) != m {
		return Result{}, fmt.Errorf("design matrix has %d rows and residuals %d, %w",
			m, len(residuals), models.ErrTargetLenMismatch)
	}
	if m < n+2 {
		return Result{}, ErrShortResiduals
	}

	e2 := make([]float64, m)
	for i, e := range residuals {
		e2[i] = e * e
	}

	aux, err := models.NewOLSRegression(nil)
	if err != nil {
		return Result{}, err
	}
	if err := aux.Fit(x, mat.NewDense(m, 1, append([]float64(nil), e2...))); err != nil {
		return Result{}, fmt.Errorf("auxiliary regression failed, %w", err)
	}

	fitted, err := aux.Predict(x)
	if err != nil {
		return Result{}, fmt.Errorf("auxiliary regression failed, %w", err)
	}

	r2 := stat.RSquaredFrom(fitted, e2, nil)
	lm := float64(m) * r2

	chi := distuv.ChiSquared{K: float64(n)}
	p := chi.Survival(lm)

	verdict := VerdictHomoscedastic
	if p < alpha {
		verdict = VerdictHeteroscedastic
	}

	return Result{
		Name:      "Breusch-Pagan",
		Statistic: lm,
		PValue:    p,
		Verdict:   verdict,
	}, nil
}
