// Package server exposes the dashboard over HTTP: four HTML views backed by
// echart pages plus a JSON API mirroring each view. The model is fitted once
// per request cycle and passed to every computation so all displayed outputs
// come from the same fit.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quantara/salesdash/config"
)

type Server struct {
	cfg    *config.Config
	router *gin.Engine
}

func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())

	s := &Server{
		cfg:    cfg,
		router: router,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/descriptive", s.handleDescriptive)
	s.router.GET("/regression", s.handleRegression)
	s.router.GET("/prediction", s.handlePrediction)
	s.router.GET("/assumptions", s.handleAssumptions)

	s.router.GET("/charts/descriptive", s.handleDescriptiveCharts)
	s.router.GET("/charts/regression", s.handleRegressionCharts)
	s.router.GET("/charts/prediction", s.handlePredictionChart)

	api := s.router.Group("/api")
	api.GET("/descriptive", s.handleAPIDescriptive)
	api.GET("/regression", s.handleAPIRegression)
	api.GET("/predict", s.handleAPIPredict)
	api.GET("/assumptions", s.handleAPIAssumptions)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the configured address and blocks.
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Addr)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Request-ID", uuid.NewString())
		c.Next()
	}
}
