package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/devpulse/devpulse/internal/activity"
	"github.com/devpulse/devpulse/internal/analysis"
	"github.com/devpulse/devpulse/internal/github"
	"github.com/devpulse/devpulse/internal/insights"
	"github.com/devpulse/devpulse/internal/snapshot"
)

// ActivityFetcher supplies the raw activity dataset for a username.
type ActivityFetcher interface {
	FetchUserActivity(ctx context.Context, username string) (*activity.Dataset, error)
}

// AnalyzeHandler handles analysis requests: fetch (or reuse) the dataset,
// run the pattern pipeline, compose insights.
type AnalyzeHandler struct {
	fetcher     ActivityFetcher
	analyzer    *analysis.Analyzer
	composer    *insights.Composer
	snapshots   *snapshot.Store // nil when persistence is not configured
	snapshotTTL time.Duration
}

// NewAnalyzeHandler creates an analyze handler. snapshots may be nil.
func NewAnalyzeHandler(fetcher ActivityFetcher, analyzer *analysis.Analyzer, composer *insights.Composer, snapshots *snapshot.Store, snapshotTTL time.Duration) *AnalyzeHandler {
	return &AnalyzeHandler{
		fetcher:     fetcher,
		analyzer:    analyzer,
		composer:    composer,
		snapshots:   snapshots,
		snapshotTTL: snapshotTTL,
	}
}

// AnalyzeRequest is the POST /api/analyze request body.
type AnalyzeRequest struct {
	Username string `json:"username"`
}

// AnalyzeResponse is the successful analysis document.
type AnalyzeResponse struct {
	Success  bool                    `json:"success"`
	Data     *activity.Dataset       `json:"data"`
	Patterns *analysis.PatternReport `json:"patterns"`
	Insights *insights.Report        `json:"insights"`
}

// Analyze handles POST /api/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := parseJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Username == "" {
		respondError(w, http.StatusBadRequest, "Username is required")
		return
	}
	if !github.ValidUsername(req.Username) {
		respondError(w, http.StatusBadRequest, "Invalid GitHub username")
		return
	}

	ctx := r.Context()

	dataset, err := h.loadDataset(ctx, req.Username)
	if err != nil {
		slog.Error("Failed to fetch user activity", "username", req.Username, "error", err)
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	patterns, err := h.analyzer.Analyze(dataset)
	if err != nil {
		var formatErr *analysis.DataFormatError
		if errors.As(err, &formatErr) {
			slog.Error("Malformed activity data", "username", req.Username, "error", err)
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("Analysis failed", "username", req.Username, "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	report := h.composer.Generate(patterns, dataset)

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		Success:  true,
		Data:     dataset,
		Patterns: patterns,
		Insights: report,
	})
}

// loadDataset reuses a fresh snapshot when one exists, otherwise fetches
// from GitHub and stores the result. Snapshot failures are logged, never
// fatal: the network path is the source of truth.
func (h *AnalyzeHandler) loadDataset(ctx context.Context, username string) (*activity.Dataset, error) {
	if h.snapshots != nil {
		dataset, err := h.snapshots.Latest(ctx, username, h.snapshotTTL)
		if err != nil {
			slog.Warn("Snapshot lookup failed", "username", username, "error", err)
		} else if dataset != nil {
			return dataset, nil
		}
	}

	dataset, err := h.fetcher.FetchUserActivity(ctx, username)
	if err != nil {
		return nil, err
	}

	if h.snapshots != nil {
		if err := h.snapshots.Save(ctx, dataset, time.Now()); err != nil {
			slog.Warn("Snapshot save failed", "username", username, "error", err)
		}
	}
	return dataset, nil
}
