// Package regression fits the dashboard's ordinary least squares model of
// monthly sales on the five predictor columns and exposes point prediction
// from user supplied predictor values.
package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/quantara/salesdash/dataset"
	"github.com/quantara/salesdash/models"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrModelFit      = errors.New("unable to fit sales regression model")
	ErrInvalidInput  = errors.New("invalid prediction input")
	ErrInputMismatch = errors.New("prediction input does not match model predictors")
)

// Service rating is entered through a bounded widget.
const (
	RatingMin = 1.0
	RatingMax = 10.0
)

// PredictionInput carries the five hypothetical predictor values for a
// point prediction. Values outside the training range are allowed; the
// service rating is bounded by its widget range.
type PredictionInput struct {
	AdSpend       float64 `json:"ad_spend"`
	StoreVisits   float64 `json:"store_visits"`
	SalesReps     float64 `json:"sales_reps"`
	ServiceRating float64 `json:"service_rating"`
	PromoSpend    float64 `json:"promo_spend"`
}

// Vector returns the input values in fitting order.
func (in PredictionInput) Vector() []float64 {
	return []float64{in.AdSpend, in.StoreVisits, in.SalesReps, in.ServiceRating, in.PromoSpend}
}

// Validate rejects non-finite values and a service rating outside its
// widget range. Malformed input never reaches the model evaluation.
func (in PredictionInput) Validate() error {
	names := dataset.PredictorNames()
	for i, v := range in.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not a finite number, %w", names[i], ErrInvalidInput)
		}
	}
	if in.ServiceRating < RatingMin || in.ServiceRating > RatingMax {
		return fmt.Errorf("service_rating %.2f is outside [%.0f, %.0f], %w",
			in.ServiceRating, RatingMin, RatingMax, ErrInvalidInput)
	}
	return nil
}

// Coefficient is one row of the regression summary.
type Coefficient struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	StdErr float64 `json:"std_err"`
	TValue float64 `json:"t_value"`
	PValue float64 `json:"p_value"`
}

// FittedModel is the result of an ordinary least squares fit. It is a pure
// function of the dataset: refitting on identical data yields identical
// coefficients. Treat as an immutable value once fitted.
type FittedModel struct {
	OutcomeName string   `json:"outcome"`
	Names       []string `json:"predictors"`

	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coefficients"`

	Summary []Coefficient `json:"summary"`

	Fitted    []float64 `json:"fitted"`
	Residuals []float64 `json:"residuals"`

	R2      float64 `json:"r_squared"`
	AdjR2   float64 `json:"adj_r_squared"`
	FStat   float64 `json:"f_statistic"`
	FPValue float64 `json:"f_p_value"`

	NumObs     int `json:"num_observations"`
	DFResidual int `json:"df_residual"`
}

// FitDataset fits the model on the compiled-in monthly sales table.
func FitDataset() (*FittedModel, error) {
	return Fit(dataset.PredictorMatrix(), dataset.Outcome(), dataset.PredictorNames(), dataset.OutcomeName())
}

// Fit solves the least squares problem of y on the columns of x plus an
// intercept and derives the full inference summary. A rank deficient design
// matrix fails with an error wrapping ErrModelFit and models.ErrRankDeficient
// rather than returning NaN coefficients.
func Fit(x *mat.Dense, y []float64, names []string, outcomeName string) (*FittedModel, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: %w", ErrModelFit, models.ErrNoTrainingMatrix)
	}
	m, n := x.Dims()
	if len(y) != m {
		return nil, fmt.Errorf("%w: %w", ErrModelFit, models.ErrTargetLenMismatch)
	}
	if len(names) != n {
		return nil, fmt.Errorf("%d predictor names for %d columns, %w", len(names), n, ErrModelFit)
	}
	k := n + 1
	if m <= k {
		return nil, fmt.Errorf("%d observations cannot identify %d parameters, %w", m, k, ErrModelFit)
	}

	model, err := models.NewOLSRegression(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelFit, err)
	}

	yMx := mat.NewDense(m, 1, append([]float64(nil), y...))
	if err := model.Fit(x, yMx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelFit, err)
	}

	fitted, err := model.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelFit, err)
	}
	fitted = append([]float64(nil), fitted...)

	residuals := make([]float64, m)
	sse := 0.0
	for i := range y {
		residuals[i] = y[i] - fitted[i]
		sse += residuals[i] * residuals[i]
	}

	r2 := stat.RSquaredFrom(fitted, y, nil)
	adjR2 := 1.0 - (1.0-r2)*float64(m-1)/float64(m-k)

	sigma2 := sse / float64(m-k)

	stdErr, err := coefStdErr(x, sigma2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelFit, err)
	}

	coef := model.Coef()
	values := append([]float64{model.Intercept()}, coef...)
	rowNames := append([]string{"intercept"}, names...)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m - k)}
	summary := make([]Coefficient, k)
	for i := range summary {
		tv := values[i] / stdErr[i]
		summary[i] = Coefficient{
			Name:   rowNames[i],
			Value:  values[i],
			StdErr: stdErr[i],
			TValue: tv,
			PValue: 2.0 * tDist.Survival(math.Abs(tv)),
		}
	}

	fStat := (r2 / float64(k-1)) / ((1.0 - r2) / float64(m-k))
	fDist := distuv.F{D1: float64(k - 1), D2: float64(m - k)}

	return &FittedModel{
		OutcomeName: outcomeName,
		Names:       append([]string(nil), names...),
		Intercept:   model.Intercept(),
		Coef:        coef,
		Summary:     summary,
		Fitted:      fitted,
		Residuals:   residuals,
		R2:          r2,
		AdjR2:       adjR2,
		FStat:       fStat,
		FPValue:     fDist.Survival(fStat),
		NumObs:      m,
		DFResidual:  m - k,
	}, nil
}

// Predict evaluates intercept + sum(coef_i * x_i) for the supplied values.
// Extrapolation beyond the training range is allowed.
func (fm *FittedModel) Predict(in PredictionInput) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	v := in.Vector()
	if len(v) != len(fm.Coef) {
		return 0, fmt.Errorf("got %d values for %d coefficients, %w", len(v), len(fm.Coef), ErrInputMismatch)
	}

	p := fm.Intercept
	for i, c := range fm.Coef {
		p += c * v[i]
	}
	return p, nil
}

// coefStdErr computes the standard errors of the intercept and slope
// estimates from the diagonal of sigma2 * (X'X)^-1 where X carries the
// intercept column.
func coefStdErr(x *mat.Dense, sigma2 float64) ([]float64, error) {
	m, n := x.Dims()
	k := n + 1

	xd := mat.NewDense(m, k, nil)
	for i := 0; i < m; i++ {
		xd.Set(i, 0, 1.0)
	}
	for j := 0; j < n; j++ {
		xd.SetCol(j+1, mat.Col(nil, j, x))
	}

	var xtx mat.Dense
	xtx.Mul(xd.T(), xd)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("normal matrix is not invertible, %w", models.ErrRankDeficient)
	}

	se := make([]float64, k)
	for i := range se {
		se[i] = math.Sqrt(sigma2 * inv.At(i, i))
	}
	return se, nil
}
