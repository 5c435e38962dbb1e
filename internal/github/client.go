package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/devpulse/devpulse/internal/activity"
)

const perPage = 100

// ClientConfig holds the knobs for the GitHub API client.
type ClientConfig struct {
	BaseURL      string // e.g. https://api.github.com
	Token        string // optional; unauthenticated requests work at lower limits
	MaxEvents    int    // cap on fetched events per user
	LookbackDays int    // events older than this window are dropped
	Cache        *DatasetCache
}

// Client fetches a user's public activity from the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	maxEvents  int
	lookback   time.Duration
	httpClient *http.Client
	cache      *DatasetCache
}

// NewClient creates a new GitHub API client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.github.com"
	}
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = 300
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = 90
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		token:     cfg.Token,
		maxEvents: cfg.MaxEvents,
		lookback:  time.Duration(cfg.LookbackDays) * 24 * time.Hour,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cfg.Cache,
	}
}

// FetchUserActivity assembles the complete activity dataset for a user:
// profile, recent events (paginated, capped, lookback-filtered), public
// repositories, and contribution stats derived from the event stream.
// Cached datasets are reused within their TTL.
func (c *Client) FetchUserActivity(ctx context.Context, username string) (*activity.Dataset, error) {
	if c.cache != nil {
		if dataset, found := c.cache.Get(username); found {
			return dataset, nil
		}
	}

	profile, err := c.getUserProfile(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching profile for %s: %w", username, err)
	}

	events, err := c.getUserEvents(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching events for %s: %w", username, err)
	}

	repos, err := c.getUserRepos(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching repositories for %s: %w", username, err)
	}

	dataset := &activity.Dataset{
		Username:      username,
		Profile:       profile,
		Events:        events,
		Repositories:  repos,
		Contributions: activity.BuildContributions(events),
	}

	if c.cache != nil {
		c.cache.Update(username, dataset)
	}
	return dataset, nil
}

// getUserProfile fetches the raw user profile document.
func (c *Client) getUserProfile(ctx context.Context, username string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	resp, err := c.doRequest(ctx, http.MethodGet, u)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("user %q not found", username)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, readErrorAndClose(resp)
	}

	var profile json.RawMessage
	if err := readAndClose(resp, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return profile, nil
}

// getUserEvents fetches recent public events, following pages until the
// stream is exhausted or maxEvents is reached. Events older than the
// lookback window are dropped; GitHub keeps at most ~90 days of events
// anyway, so the window usually bites only when configured shorter.
func (c *Client) getUserEvents(ctx context.Context, username string) ([]activity.Event, error) {
	cutoff := time.Now().UTC().Add(-c.lookback)

	var events []activity.Event
	for page := 1; len(events) < c.maxEvents; page++ {
		u := fmt.Sprintf("%s/users/%s/events?per_page=%d&page=%d",
			c.baseURL, url.PathEscape(username), perPage, page)

		resp, err := c.doRequest(ctx, http.MethodGet, u)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, readErrorAndClose(resp)
		}

		var pageEvents []activity.Event
		if err := readAndClose(resp, &pageEvents); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		if len(pageEvents) == 0 {
			break
		}

		for i := range pageEvents {
			if t, err := time.Parse(activity.TimestampLayout, pageEvents[i].CreatedAt); err == nil && t.Before(cutoff) {
				continue
			}
			events = append(events, pageEvents[i])
		}

		if len(pageEvents) < perPage {
			break
		}
	}

	if len(events) > c.maxEvents {
		events = events[:c.maxEvents]
	}
	if events == nil {
		events = []activity.Event{}
	}
	return events, nil
}

// getUserRepos fetches the user's public repositories, most recently
// updated first.
func (c *Client) getUserRepos(ctx context.Context, username string) ([]activity.Repository, error) {
	u := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d",
		c.baseURL, url.PathEscape(username), perPage)

	resp, err := c.doRequest(ctx, http.MethodGet, u)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, readErrorAndClose(resp)
	}

	var repos []activity.Repository
	if err := readAndClose(resp, &repos); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if repos == nil {
		repos = []activity.Repository{}
	}
	return repos, nil
}

// doRequest makes an authenticated request to the GitHub API
func (c *Client) doRequest(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Add auth header if token is configured
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "devpulse-analyzer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	// Check rate limit
	if resp.StatusCode == http.StatusForbidden {
		if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining == "0" {
			resetTime := resp.Header.Get("X-RateLimit-Reset")
			resp.Body.Close()
			slog.Warn("GitHub rate limit exceeded", "reset", resetTime)
			return nil, fmt.Errorf("rate limit exceeded, resets at: %s", resetTime)
		}
	}

	return resp, nil
}

// readAndClose reads the body and closes it. Use in paginated loops
// instead of defer resp.Body.Close() to avoid leaking connections.
func readAndClose(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

// readErrorAndClose reads an error body and closes it.
func readErrorAndClose(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("github API error %d: %s", resp.StatusCode, string(body))
}
