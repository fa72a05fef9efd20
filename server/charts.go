package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/quantara/salesdash/dataset"
	"github.com/quantara/salesdash/plots"
	"github.com/quantara/salesdash/regression"
	"github.com/quantara/salesdash/stats"
)

func (s *Server) handleDescriptiveCharts(c *gin.Context) {
	page := components.NewPage()
	for i, name := range dataset.PredictorNames() {
		h, err := stats.NewHistogram(name, dataset.Column(i), s.cfg.HistogramBins)
		if err != nil {
			c.String(http.StatusInternalServerError, "binning %s: %v", name, err)
			return
		}
		page.AddCharts(plots.HistogramBar(h))
	}
	renderPage(c, page)
}

func (s *Server) handleRegressionCharts(c *gin.Context) {
	fm, err := regression.FitDataset()
	if err != nil {
		c.String(http.StatusInternalServerError, "model unavailable: %v", err)
		return
	}

	page := components.NewPage()
	page.AddCharts(plots.FittedLine(fm))
	for _, sc := range plots.Pairwise() {
		page.AddCharts(sc)
	}
	renderPage(c, page)
}

func (s *Server) handlePredictionChart(c *gin.Context) {
	in, err := parseInput(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid input: %v", err)
		return
	}

	fm, err := regression.FitDataset()
	if err != nil {
		c.String(http.StatusInternalServerError, "model unavailable: %v", err)
		return
	}

	predicted, err := fm.Predict(in)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid input: %v", err)
		return
	}

	page := components.NewPage()
	page.AddCharts(plots.PredictionOverlay(predicted))
	renderPage(c, page)
}

func renderPage(c *gin.Context, page *components.Page) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(c.Writer); err != nil {
		log.Printf("[server] rendering chart page: %v", err)
	}
}
