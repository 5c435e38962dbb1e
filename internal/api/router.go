package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Database interface{ Health(context.Context) error }
	Analyze  *AnalyzeHandler
}

// RouterResult holds the router and resources that need cleanup
type RouterResult struct {
	Router       *chi.Mux
	RateLimiters *RateLimiters
}

// NewRouter creates and configures the HTTP router.
// Caller must call result.RateLimiters.Stop() on shutdown.
func NewRouter(cfg *RouterConfig) *RouterResult {
	r := chi.NewRouter()

	rateLimiters := NewRateLimiters()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware)
	r.Use(rateLimiters.Global.Middleware)

	if cfg.Database != nil {
		r.Get("/api/health", NewHealthHandler(cfg.Database))
	} else {
		r.Get("/api/health", HealthHandler)
	}

	// Analyze: strict rate limit (10/min/IP) + concurrency cap (4 global),
	// since each request fans out to the GitHub API.
	r.With(AnalyzeGuardMiddleware(rateLimiters.Analyze)).
		Post("/api/analyze", cfg.Analyze.Analyze)

	return &RouterResult{
		Router:       r,
		RateLimiters: rateLimiters,
	}
}
