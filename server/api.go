package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/quantara/salesdash/dataset"
	"github.com/quantara/salesdash/diagnostics"
	"github.com/quantara/salesdash/regression"
	"github.com/quantara/salesdash/stats"
)

type apiError struct {
	Error string `json:"error"`
}

func respondJSON(c *gin.Context, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		c.String(http.StatusInternalServerError, "marshaling response: %v", err)
		return
	}
	c.Data(status, "application/json", body)
}

type descriptiveResponse struct {
	Rows         []dataset.Observation `json:"rows"`
	BusinessDays []int                 `json:"business_days"`
	Summaries    []stats.Summary       `json:"summaries"`
	Histograms   []stats.Histogram     `json:"histograms"`
}

func (s *Server) handleAPIDescriptive(c *gin.Context) {
	summaries, err := columnSummaries()
	if err != nil {
		respondJSON(c, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}

	names := dataset.PredictorNames()
	histograms := make([]stats.Histogram, 0, len(names))
	for i, name := range names {
		h, err := stats.NewHistogram(name, dataset.Column(i), s.cfg.HistogramBins)
		if err != nil {
			respondJSON(c, http.StatusInternalServerError, apiError{Error: err.Error()})
			return
		}
		histograms = append(histograms, h)
	}

	respondJSON(c, http.StatusOK, descriptiveResponse{
		Rows:         dataset.Table(),
		BusinessDays: dataset.BusinessDays(),
		Summaries:    summaries,
		Histograms:   histograms,
	})
}

type regressionResponse struct {
	Model    *regression.FittedModel `json:"model"`
	Equation string                  `json:"equation"`
}

func (s *Server) handleAPIRegression(c *gin.Context) {
	fm, err := regression.FitDataset()
	if err != nil {
		respondJSON(c, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}

	respondJSON(c, http.StatusOK, regressionResponse{
		Model:    fm,
		Equation: fm.Equation(),
	})
}

type predictResponse struct {
	Input     regression.PredictionInput `json:"input"`
	Predicted float64                    `json:"predicted"`
}

func (s *Server) handleAPIPredict(c *gin.Context) {
	in, err := parseInput(c)
	if err != nil {
		respondJSON(c, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	fm, err := regression.FitDataset()
	if err != nil {
		respondJSON(c, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}

	predicted, err := fm.Predict(in)
	if err != nil {
		respondJSON(c, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	respondJSON(c, http.StatusOK, predictResponse{
		Input:     in,
		Predicted: predicted,
	})
}

func (s *Server) handleAPIAssumptions(c *gin.Context) {
	fm, err := regression.FitDataset()
	if err != nil {
		respondJSON(c, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}

	report, err := diagnostics.Run(fm, s.cfg.Alpha)
	if err != nil {
		respondJSON(c, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}

	respondJSON(c, http.StatusOK, report)
}
