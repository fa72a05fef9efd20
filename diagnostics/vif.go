package diagnostics

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"

	mat_ "github.com/quantara/salesdash/mat"
	"github.com/quantara/salesdash/models"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Conventional VIF thresholds.
const (
	vifModerateBound = 5.0
	vifSevereBound   = 10.0
)

const (
	VerdictCollinearityLow      = "low multicollinearity"
	VerdictCollinearityModerate = "moderate multicollinearity"
	VerdictCollinearitySevere   = "severe multicollinearity"
)

// VIFResult is the variance inflation factor of a single predictor.
type VIFResult struct {
	Name     string  `json:"name"`
	RSquared float64 `json:"r_squared"`
	VIF      float64 `json:"vif"`
	Verdict  string  `json:"verdict"`
}

// MarshalJSON serializes an unbounded factor as null since JSON has no
// representation for infinity.
func (v VIFResult) MarshalJSON() ([]byte, error) {
	var vif any
	if !math.IsInf(v.VIF, 0) && !math.IsNaN(v.VIF) {
		vif = v.VIF
	}
	return json.Marshal(struct {
		Name     string  `json:"name"`
		RSquared float64 `json:"r_squared"`
		VIF      any     `json:"vif"`
		Verdict  string  `json:"verdict"`
	}{v.Name, v.RSquared, vif, v.Verdict})
}

// VIF computes the variance inflation factor of every predictor by
// regressing it on the remaining predictors: VIF = 1/(1-R2) of that
// auxiliary regression. A predictor orthogonal to the rest scores exactly 1
// and the factor grows without bound as collinearity approaches 1.
func VIF(names []string, cols [][]float64) ([]VIFResult, error) {
	if len(cols) < 2 {
		return nil, ErrMinimumFeatures
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d feature columns, %w", len(names), len(cols), ErrFeatureLenMismatch)
	}

	var m int
	for _, col := range cols {
		if len(col) < 2 {
			return nil, ErrFeatureLen
		}
		if m == 0 {
			m = len(col)
			continue
		}
		if m != len(col) {
			return nil, ErrFeatureLenMismatch
		}
	}

	results := make([]VIFResult, len(cols))
	for j, target := range cols {
		others := make([][]float64, 0, len(cols)-1)
		for i, col := range cols {
			if i == j {
				continue
			}
			others = append(others, col)
		}
		x, err := mat_.NewDenseFromColumns(others...)
		if err != nil {
			return nil, err
		}

		aux, err := models.NewOLSRegression(nil)
		if err != nil {
			return nil, err
		}
		if err := aux.Fit(x, mat.NewDense(m, 1, append([]float64(nil), target...))); err != nil {
			return nil, fmt.Errorf("auxiliary regression for %s failed, %w", names[j], err)
		}

		fitted, err := aux.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("auxiliary regression for %s failed, %w", names[j], err)
		}

		r2 := stat.RSquaredFrom(fitted, target, nil)

		vif := math.Inf(1)
		if r2 < 1.0 {
			vif = 1.0 / (1.0 - r2)
		}

		verdict := VerdictCollinearityLow
		switch {
		case vif >= vifSevereBound:
			verdict = VerdictCollinearitySevere
		case vif >= vifModerateBound:
			verdict = VerdictCollinearityModerate
		}

		results[j] = VIFResult{
			Name:     names[j],
			RSquared: r2,
			VIF:      vif,
			Verdict:  verdict,
		}
	}
	return results, nil
}
