package diagnostics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	VerdictResidualsNormal    = "residuals consistent with normality"
	VerdictResidualsNotNormal = "residuals depart from normality"
)

// Lilliefors runs the Kolmogorov-Smirnov normality test on the residuals
// with the Lilliefors correction for location and scale estimated from the
// same sample. The p-value uses the Dallal-Wilkinson (1986) approximation.
func Lilliefors(residuals []float64, alpha float64) (Result, error) {
	n := len(residuals)
	if n < 4 {
		return Result{}, ErrShortResiduals
	}

	mean, sd := stat.MeanStdDev(residuals, nil)
	if sd == 0 {
		return Result{}, ErrZeroResidualVariance
	}

	z := make([]float64, n)
	for i, e := range residuals {
		z[i] = (e - mean) / sd
	}
	sort.Float64s(z)

	// max distance between the empirical CDF and the standard normal CDF,
	// checked on both sides of each step
	d := 0.0
	nf := float64(n)
	for i, zi := range z {
		cdf := distuv.UnitNormal.CDF(zi)
		if lo := cdf - float64(i)/nf; lo > d {
			d = lo
		}
		if hi := float64(i+1)/nf - cdf; hi > d {
			d = hi
		}
	}

	p := dallalWilkinson(d, n)

	verdict := VerdictResidualsNormal
	if p < alpha {
		verdict = VerdictResidualsNotNormal
	}

	return Result{
		Name:      "Lilliefors",
		Statistic: d,
		PValue:    p,
		Verdict:   verdict,
	}, nil
}

// dallalWilkinson approximates the Lilliefors test p-value. Samples larger
// than 100 are rescaled to the n=100 form first.
func dallalWilkinson(d float64, n int) float64 {
	nf := float64(n)
	if n > 100 {
		d *= math.Pow(nf/100.0, 0.49)
		nf = 100.0
	}

	p := math.Exp(-7.01256*d*d*(nf+2.78019) +
		2.99587*d*math.Sqrt(nf+2.78019) -
		0.122119 + 0.974598/math.Sqrt(nf) + 1.67997/nf)

	return math.Min(math.Max(p, 0.0), 1.0)
}
