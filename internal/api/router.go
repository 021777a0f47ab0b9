package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(configPath string) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(PrivateSubnetOnly) // Restrict access to private subnets
	r.Use(CORS)
	r.Use(JSONContentType)

	h := NewHandler(configPath)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Rule list endpoints
		r.Get("/rulesets", h.GetRuleSets)
		r.Get("/rulesets/{name}", h.GetRuleSet)
		r.Get("/rulesets/{name}/ruleset", h.GetRuleSetDocument)
		r.Get("/rulesets/{name}/text", h.GetRuleSetText)

		// Build endpoint
		r.Post("/build", h.TriggerBuild)

		// Status endpoint
		r.Get("/status", h.GetStatus)

		// Health check endpoint
		r.Get("/health", h.CheckHealth)
	})

	// Health check endpoint at root
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	return r
}
