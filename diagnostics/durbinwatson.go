package diagnostics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Conventional statistic ranges for the autocorrelation verdict.
const (
	dwPositiveBound = 1.5
	dwNegativeBound = 2.5
)

const (
	VerdictNoAutocorrelation       = "no autocorrelation"
	VerdictPositiveAutocorrelation = "positive autocorrelation"
	VerdictNegativeAutocorrelation = "negative autocorrelation"
)

// DurbinWatson computes the Durbin-Watson statistic of the residual series,
// the ratio of the sum of squared successive differences to the sum of
// squared residuals. The statistic lies in [0, 4] with 2 indicating no
// autocorrelation. The p-value uses the large-sample normal approximation
// with variance 4/n around 2.
func DurbinWatson(residuals []float64) (Result, error) {
	n := len(residuals)
	if n < 2 {
		return Result{}, ErrShortResiduals
	}

	sse := floats.Dot(residuals, residuals)
	if sse == 0 {
		return Result{}, ErrZeroResidualVariance
	}

	num := 0.0
	for i := 1; i < n; i++ {
		diff := residuals[i] - residuals[i-1]
		num += diff * diff
	}
	d := num / sse

	z := (d - 2.0) / math.Sqrt(4.0/float64(n))
	cdf := distuv.UnitNormal.CDF(z)
	p := 2.0 * math.Min(cdf, 1.0-cdf)

	verdict := VerdictNoAutocorrelation
	switch {
	case d < dwPositiveBound:
		verdict = VerdictPositiveAutocorrelation
	case d > dwNegativeBound:
		verdict = VerdictNegativeAutocorrelation
	}

	return Result{
		Name:      "Durbin-Watson",
		Statistic: d,
		PValue:    p,
		Verdict:   verdict,
	}, nil
}
