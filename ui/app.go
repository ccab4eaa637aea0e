// Package ui serves the rendered analysis report.
package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sycobench/domain/core"
	"sycobench/internal/report"
	"sycobench/ports"
)

// App represents the UI application
type App struct {
	router  *chi.Mux
	reports ports.ReportRepository
	port    string
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates a new UI application
func NewApp(cfg Config, reports ports.ReportRepository) *App {
	app := &App{
		router:  chi.NewRouter(),
		reports: reports,
		port:    cfg.Port,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleReport)
	a.router.Get("/healthz", a.handleHealth)
	a.router.Get("/api/report/latest", a.handleReportJSON)
	a.router.Get("/api/report/latest/markdown", a.handleReportMarkdown)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("Starting sycobench UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := a.reports.LatestReport(r.Context())
	if err != nil {
		a.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(report.HTML(rep))
}

func (a *App) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	rep, err := a.reports.LatestReport(r.Context())
	if err != nil {
		a.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, rep)
}

func (a *App) handleReportMarkdown(w http.ResponseWriter, r *http.Request) {
	rep, err := a.reports.LatestReport(r.Context())
	if err != nil {
		a.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(report.Markdown(rep)))
}

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[UI] encode error: %v", err)
	}
}

func (a *App) renderError(w http.ResponseWriter, err error) {
	if core.IsNotFoundError(err) {
		http.Error(w, "no report available yet", http.StatusNotFound)
		return
	}
	log.Printf("[UI] error: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
