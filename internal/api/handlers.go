package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// HealthHandler handles GET /api/health
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NewHealthHandler creates a health handler that also checks the database
func NewHealthHandler(dbHealthChecker interface{ Health(context.Context) error }) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]string)
		status := "healthy"

		if dbHealthChecker != nil {
			if err := dbHealthChecker.Health(r.Context()); err != nil {
				slog.Error("Database health check failed", "error", err)
				services["database"] = "unhealthy"
				status = "degraded"
			} else {
				services["database"] = "healthy"
			}
		}

		code := http.StatusOK
		if status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		respondJSON(w, code, HealthResponse{
			Status:    status,
			Version:   Version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services:  services,
		})
	}
}

// ErrorResponse is the single-message error body the service returns for
// any fatal failure; no partial result accompanies it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// parseJSON is a helper to decode JSON request bodies
func parseJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
