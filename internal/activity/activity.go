package activity

import (
	"encoding/json"
	"sort"
	"time"
)

// Event type constants for the GitHub public events API.
const (
	EventPush              = "PushEvent"
	EventPullRequest       = "PullRequestEvent"
	EventPullRequestReview = "PullRequestReviewEvent"
	EventIssueComment      = "IssueCommentEvent"
	EventIssues            = "IssuesEvent"
	EventCreate            = "CreateEvent"
	EventFork              = "ForkEvent"
	EventWatch             = "WatchEvent"
)

// TimestampLayout is the fixed UTC format GitHub uses for event timestamps.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Repo is the repository reference attached to an event.
type Repo struct {
	Name string `json:"name"`
}

// Event represents a single GitHub activity event.
type Event struct {
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	Repo      *Repo           `json:"repo,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// CommitCount returns the number of commit entries in the event payload.
// Events without a payload, or whose payload carries no commits array,
// count as zero.
func (e *Event) CommitCount() int {
	if len(e.Payload) == 0 {
		return 0
	}
	var payload struct {
		Commits []json.RawMessage `json:"commits"`
	}
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return 0
	}
	return len(payload.Commits)
}

// Repository represents a public repository owned by the user.
type Repository struct {
	Name            string `json:"name"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language,omitempty"`
	UpdatedAt       string `json:"updated_at"`
}

// Contributions holds contribution statistics derived from the event stream.
// ActiveDays and RepositoriesContributed are deduplicated and sorted so that
// serialized output is stable across runs.
type Contributions struct {
	TotalEvents             int            `json:"total_events"`
	EventTypes              map[string]int `json:"event_types"`
	ActiveDays              []string       `json:"active_days"`
	RepositoriesContributed []string       `json:"repositories_contributed"`
}

// Dataset is the complete activity bundle for one user, as assembled by the
// fetching collaborator and consumed by the analysis pipeline.
type Dataset struct {
	Username      string          `json:"username"`
	Profile       json.RawMessage `json:"profile,omitempty"`
	Events        []Event         `json:"events"`
	Repositories  []Repository    `json:"repositories"`
	Contributions Contributions   `json:"contributions"`
}

// BuildContributions derives contribution statistics from an event stream.
// Active days are deduplicated by calendar date (UTC), not by event. Events
// whose timestamp does not parse are counted by type but contribute no
// active day; the analysis stage is responsible for rejecting them.
func BuildContributions(events []Event) Contributions {
	c := Contributions{
		TotalEvents:             len(events),
		EventTypes:              make(map[string]int),
		ActiveDays:              []string{},
		RepositoriesContributed: []string{},
	}

	days := make(map[string]bool)
	repos := make(map[string]bool)

	for i := range events {
		ev := &events[i]
		typ := ev.Type
		if typ == "" {
			typ = "Unknown"
		}
		c.EventTypes[typ]++

		if t, err := time.Parse(TimestampLayout, ev.CreatedAt); err == nil {
			days[t.UTC().Format("2006-01-02")] = true
		}

		if ev.Repo != nil && ev.Repo.Name != "" {
			repos[ev.Repo.Name] = true
		}
	}

	for d := range days {
		c.ActiveDays = append(c.ActiveDays, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(c.ActiveDays)))

	for r := range repos {
		c.RepositoriesContributed = append(c.RepositoriesContributed, r)
	}
	sort.Strings(c.RepositoriesContributed)

	return c
}
