package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/devpulse/internal/activity"
	"github.com/devpulse/devpulse/internal/analysis"
	"github.com/devpulse/devpulse/internal/insights"
)

// stubFetcher returns a fixed dataset or error.
type stubFetcher struct {
	dataset *activity.Dataset
	err     error
}

func (s *stubFetcher) FetchUserActivity(ctx context.Context, username string) (*activity.Dataset, error) {
	return s.dataset, s.err
}

func newTestHandler(fetcher ActivityFetcher) *AnalyzeHandler {
	return NewAnalyzeHandler(fetcher, analysis.New(analysis.DefaultConfig()), insights.NewComposer(), nil, 0)
}

func postAnalyze(t *testing.T, h *AnalyzeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)
	return rec
}

func TestAnalyze_Success(t *testing.T) {
	events := []activity.Event{
		{Type: activity.EventPush, CreatedAt: "2025-01-07T14:30:00Z", Repo: &activity.Repo{Name: "octocat/hello"}},
	}
	handler := newTestHandler(&stubFetcher{dataset: &activity.Dataset{
		Username:      "octocat",
		Events:        events,
		Repositories:  []activity.Repository{{Name: "hello", Language: "Go", StargazersCount: 7}},
		Contributions: activity.BuildContributions(events),
	}})

	rec := postAnalyze(t, handler, `{"username":"octocat"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool                   `json:"success"`
		Data     map[string]interface{} `json:"data"`
		Patterns map[string]interface{} `json:"patterns"`
		Insights map[string]interface{} `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "octocat", resp.Data["username"])
	for _, key := range []string{
		"time_patterns", "activity_patterns", "repository_patterns",
		"language_patterns", "collaboration_patterns", "productivity_metrics",
	} {
		assert.Contains(t, resp.Patterns, key)
	}
	// The handler supplies the raw dataset, so the prediction and profile
	// stages run.
	assert.Contains(t, resp.Insights, "predictions")
	assert.Contains(t, resp.Insights, "developer_profile")
}

func TestAnalyze_MissingUsername(t *testing.T) {
	handler := newTestHandler(&stubFetcher{})

	rec := postAnalyze(t, handler, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username is required")
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	handler := newTestHandler(&stubFetcher{})

	rec := postAnalyze(t, handler, `{"username"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_InvalidUsername(t *testing.T) {
	handler := newTestHandler(&stubFetcher{})

	rec := postAnalyze(t, handler, `{"username":"--not-valid--"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid GitHub username")
}

func TestAnalyze_FetchFailure(t *testing.T) {
	handler := newTestHandler(&stubFetcher{err: errors.New("rate limit exceeded")})

	rec := postAnalyze(t, handler, `{"username":"octocat"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "rate limit exceeded")
}

func TestAnalyze_MalformedDataYieldsNoPartialResult(t *testing.T) {
	handler := newTestHandler(&stubFetcher{dataset: &activity.Dataset{
		Username: "octocat",
		Events:   []activity.Event{{Type: activity.EventPush, CreatedAt: "garbage"}},
	}})

	rec := postAnalyze(t, handler, `{"username":"octocat"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
	assert.NotContains(t, resp, "patterns")
}
