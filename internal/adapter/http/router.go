package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/bizbooks/internal/adapter/http/handler"
	"github.com/iho/bizbooks/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	StatementHandler *handler.StatementHandler
	StockHandler     *handler.StockHandler
	PartyHandler     *handler.PartyHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/statement", func(r chi.Router) {
			r.Get("/", cfg.StatementHandler.Get)
			r.Get("/export", cfg.StatementHandler.Export)
		})

		r.Route("/stock", func(r chi.Router) {
			r.Get("/report", cfg.StockHandler.Report)
			r.Get("/report/export", cfg.StockHandler.Export)
			r.Get("/summary", cfg.StockHandler.Summary)
		})

		r.Route("/parties", func(r chi.Router) {
			r.Get("/", cfg.PartyHandler.List)
			r.Get("/{id}", cfg.PartyHandler.Get)
		})
	})

	return r
}
