package server

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quantara/salesdash/dataset"
	"github.com/quantara/salesdash/diagnostics"
	"github.com/quantara/salesdash/regression"
	"github.com/quantara/salesdash/stats"
)

type indexData struct {
	Title           string
	NumObservations int
	Outcome         string
	Predictors      string
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", http.StatusOK, indexData{
		Title:           "Monthly Sales Dashboard",
		NumObservations: dataset.NumObservations,
		Outcome:         dataset.OutcomeName(),
		Predictors:      strings.Join(dataset.PredictorNames(), ", "),
	})
}

type observationRow struct {
	Month        string
	Values       []float64
	Sales        float64
	BusinessDays int
}

type descriptiveData struct {
	Title      string
	Predictors []string
	Outcome    string
	Rows       []observationRow
	Summaries  []stats.Summary
}

func (s *Server) handleDescriptive(c *gin.Context) {
	summaries, err := columnSummaries()
	if err != nil {
		s.renderUnavailable(c, err)
		return
	}

	days := dataset.BusinessDays()
	rows := make([]observationRow, 0, dataset.NumObservations)
	for i, o := range dataset.Table() {
		rows = append(rows, observationRow{
			Month:        o.Month,
			Values:       o.Predictors(),
			Sales:        o.Sales,
			BusinessDays: days[i],
		})
	}

	s.renderTemplate(c, "descriptive.html", http.StatusOK, descriptiveData{
		Title:      "Descriptive Statistics",
		Predictors: dataset.PredictorNames(),
		Outcome:    dataset.OutcomeName(),
		Rows:       rows,
		Summaries:  summaries,
	})
}

type regressionData struct {
	Title    string
	Equation string
	Model    *regression.FittedModel
}

func (s *Server) handleRegression(c *gin.Context) {
	fm, err := regression.FitDataset()
	if err != nil {
		s.renderUnavailable(c, err)
		return
	}

	s.renderTemplate(c, "regression.html", http.StatusOK, regressionData{
		Title:    "Regression",
		Equation: fm.Equation(),
		Model:    fm,
	})
}

type predictionData struct {
	Title     string
	Error     string
	Form      regression.PredictionInput
	RatingMin float64
	RatingMax float64
	HasResult bool
	Outcome   string
	Predicted float64
	IframeSrc template.URL
}

func (s *Server) handlePrediction(c *gin.Context) {
	data := predictionData{
		Title:     "Prediction",
		RatingMin: regression.RatingMin,
		RatingMax: regression.RatingMax,
		Outcome:   dataset.OutcomeName(),
	}

	in, err := parseInput(c)
	if err != nil {
		data.Error = err.Error()
		data.Form = defaultInput()
		s.renderTemplate(c, "prediction.html", http.StatusBadRequest, data)
		return
	}

	fm, err := regression.FitDataset()
	if err != nil {
		s.renderUnavailable(c, err)
		return
	}

	predicted, err := fm.Predict(in)
	if err != nil {
		s.renderUnavailable(c, err)
		return
	}

	data.Form = in
	data.HasResult = true
	data.Predicted = predicted
	data.IframeSrc = template.URL("/charts/prediction?" + inputQuery(in).Encode())
	s.renderTemplate(c, "prediction.html", http.StatusOK, data)
}

type assumptionsData struct {
	Title string
	Alpha float64
	Tests []diagnostics.Result
	VIF   []diagnostics.VIFResult
}

func (s *Server) handleAssumptions(c *gin.Context) {
	fm, err := regression.FitDataset()
	if err != nil {
		s.renderUnavailable(c, err)
		return
	}

	report, err := diagnostics.Run(fm, s.cfg.Alpha)
	if err != nil {
		s.renderUnavailable(c, err)
		return
	}

	s.renderTemplate(c, "assumptions.html", http.StatusOK, assumptionsData{
		Title: "Assumptions Tests",
		Alpha: report.Alpha,
		Tests: []diagnostics.Result{report.DurbinWatson, report.BreuschPagan, report.Lilliefors},
		VIF:   report.VIF,
	})
}

func inputQuery(in regression.PredictionInput) url.Values {
	q := url.Values{}
	q.Set("ad_spend", fmt.Sprintf("%g", in.AdSpend))
	q.Set("store_visits", fmt.Sprintf("%g", in.StoreVisits))
	q.Set("sales_reps", fmt.Sprintf("%g", in.SalesReps))
	q.Set("service_rating", fmt.Sprintf("%g", in.ServiceRating))
	q.Set("promo_spend", fmt.Sprintf("%g", in.PromoSpend))
	return q
}

func columnSummaries() ([]stats.Summary, error) {
	names := dataset.PredictorNames()
	summaries := make([]stats.Summary, 0, len(names)+1)
	for i, name := range names {
		s, err := stats.Describe(name, dataset.Column(i))
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	s, err := stats.Describe(dataset.OutcomeName(), dataset.Outcome())
	if err != nil {
		return nil, err
	}
	summaries = append(summaries, s)
	return summaries, nil
}
