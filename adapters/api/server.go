// Package api exposes the analysis pipeline as a JSON API.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sycobench/app"
	"sycobench/domain/core"
	"sycobench/internal/report"
	"sycobench/ports"
)

// Server holds the API dependencies.
type Server struct {
	experiments ports.ExperimentRepository
	reports     ports.ReportRepository
	analysis    *app.AnalysisService
	models      map[string]ports.ModelConfig
}

// NewServer creates an API server.
func NewServer(experiments ports.ExperimentRepository, reports ports.ReportRepository, analysis *app.AnalysisService, models map[string]ports.ModelConfig) *Server {
	return &Server{
		experiments: experiments,
		reports:     reports,
		analysis:    analysis,
		models:      models,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/models", s.handleModels)
		v1.GET("/reports/latest", s.handleLatestReport)
		v1.GET("/reports/latest/markdown", s.handleLatestReportMarkdown)
		v1.GET("/reports/latest/models/:model", s.handleModelReport)
		v1.POST("/analyze", s.handleAnalyze)
	}
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleModels(c *gin.Context) {
	c.JSON(http.StatusOK, s.models)
}

func (s *Server) handleLatestReport(c *gin.Context) {
	rep, err := s.reports.LatestReport(c.Request.Context())
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no report available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleLatestReportMarkdown(c *gin.Context) {
	rep, err := s.reports.LatestReport(c.Request.Context())
	if err != nil {
		if core.IsNotFoundError(err) {
			c.String(http.StatusNotFound, "no report available")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, report.Markdown(rep))
}

// handleModelReport returns one model's hypothesis outcomes from the latest report.
func (s *Server) handleModelReport(c *gin.Context) {
	rep, err := s.reports.LatestReport(c.Request.Context())
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no report available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	model := c.Param("model")
	mr, ok := rep.ByModel[model]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "model not in latest report", "model": model})
		return
	}
	c.JSON(http.StatusOK, mr)
}

// handleAnalyze re-runs the analysis over the most recent experiment batch
// and stores the resulting report.
func (s *Server) handleAnalyze(c *gin.Context) {
	ctx := c.Request.Context()

	exp, err := s.experiments.LatestExperiment(ctx)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no experiment available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rep, err := s.analysis.Analyze(ctx, exp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.reports.SaveReport(ctx, exp.ID, rep); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}
